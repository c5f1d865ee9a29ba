// Package pkcs1v15 implements signature codecs for the RSA PKCS#1 v1.5
// algorithm family. Composed names append the digest name, e.g.
// "RSA-PKCS1v1.5-SHA256"; codecs are shared across digests since the
// signature value is an opaque byte string either way.
package pkcs1v15

import (
	"encoding/asn1"

	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/sig/multiformat"
)

const Name = "RSA-PKCS1v1.5"

// RawCode tags the raw layout of a PKCS#1 v1.5 signature.
const RawCode = 0xd055

// Signature is an RSA PKCS#1 v1.5 signature value, the big-endian octets of
// the signature representative.
type Signature []byte

func (s Signature) Algorithm() string {
	return Name
}

// NewRawCodec returns the raw format codec: the varint tag followed by the
// signature octets as a varint length-prefixed field.
func NewRawCodec() codec.Codec {
	return rawCodec{}
}

type rawCodec struct{}

func (rawCodec) Encode(v codec.Value) ([]byte, error) {
	s, ok := v.(Signature)
	if !ok {
		return nil, codec.NewMalformedValueError("expected %s signature value, got %T", Name, v)
	}
	if len(s) == 0 {
		return nil, codec.NewMalformedValueError("empty %s signature", Name)
	}
	return multiformat.TagWith(RawCode, multiformat.AppendField(nil, s)), nil
}

func (rawCodec) Decode(b []byte) (codec.Value, error) {
	payload, err := multiformat.UntagWith(RawCode, b)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("untagging raw %s signature: %s", Name, err)
	}
	field, rest, err := multiformat.ReadField(payload)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("reading %s signature field: %s", Name, err)
	}
	if len(rest) != 0 {
		return nil, codec.NewMalformedEncodingError("%d trailing bytes after raw %s signature", len(rest), Name)
	}
	if len(field) == 0 {
		return nil, codec.NewMalformedEncodingError("empty %s signature field", Name)
	}
	return Signature(append([]byte(nil), field...)), nil
}

// NewX509Codec returns the X.509 format codec: the signature octets as a DER
// BIT STRING, the way X.509 certificates embed RSA signature values.
func NewX509Codec() codec.Codec {
	return x509Codec{}
}

type x509Codec struct{}

func (x509Codec) Encode(v codec.Value) ([]byte, error) {
	s, ok := v.(Signature)
	if !ok {
		return nil, codec.NewMalformedValueError("expected %s signature value, got %T", Name, v)
	}
	if len(s) == 0 {
		return nil, codec.NewMalformedValueError("empty %s signature", Name)
	}
	b, err := asn1.Marshal(asn1.BitString{Bytes: s, BitLength: len(s) * 8})
	if err != nil {
		return nil, codec.NewMalformedValueError("marshaling %s signature: %s", Name, err)
	}
	return b, nil
}

func (x509Codec) Decode(b []byte) (codec.Value, error) {
	var bits asn1.BitString
	rest, err := asn1.Unmarshal(b, &bits)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("parsing X.509 %s signature: %s", Name, err)
	}
	if len(rest) != 0 {
		return nil, codec.NewMalformedEncodingError("%d trailing bytes after X.509 %s signature", len(rest), Name)
	}
	if bits.BitLength == 0 || bits.BitLength%8 != 0 {
		return nil, codec.NewMalformedEncodingError("X.509 %s signature bit string is not octet-aligned: %d bits", Name, bits.BitLength)
	}
	return Signature(append([]byte(nil), bits.Bytes...)), nil
}

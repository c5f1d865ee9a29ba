// Package pss implements the signature codec for the RSA-PSS algorithm
// family. PSS signatures have a raw format only; there is no X.509 form for
// this family.
package pss

import (
	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/sig/multiformat"
)

const Name = "RSA-PSS"

// RawCode tags the raw layout of a PSS signature.
const RawCode = 0xd0b5

// Signature is an RSA-PSS signature value, the big-endian octets of the
// signature representative.
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

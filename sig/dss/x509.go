package dss

import (
	"encoding/asn1"
	"math/big"

	"github.com/storacha/go-sigcodec/sig/codec"
)

// Dss-Sig-Value per the X.509 conventions.
type sigValue struct {
	R *big.Int
	S *big.Int
}

// NewX509Codec returns the X.509 format codec for DSS signatures: a DER
// SEQUENCE of the two INTEGERs r and s.
func NewX509Codec() codec.Codec {
	return x509Codec{}
}

type x509Codec struct{}

func (x509Codec) Encode(v codec.Value) ([]byte, error) {
	s, ok := v.(Signature)
	if !ok {
		return nil, codec.NewMalformedValueError("expected %s signature value, got %T", Name, v)
	}
	if s.R == nil || s.S == nil {
		return nil, codec.NewMalformedValueError("%s signature missing r or s", Name)
	}
	if s.R.Sign() < 0 || s.S.Sign() < 0 {
		return nil, codec.NewMalformedValueError("%s signature with negative r or s", Name)
	}

	b, err := asn1.Marshal(sigValue{R: s.R, S: s.S})
	if err != nil {
		return nil, codec.NewMalformedValueError("marshaling %s signature: %s", Name, err)
	}
	return b, nil
}

func (x509Codec) Decode(b []byte) (codec.Value, error) {
	var val sigValue
	rest, err := asn1.Unmarshal(b, &val)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("parsing X.509 %s signature: %s", Name, err)
	}
	if len(rest) != 0 {
		return nil, codec.NewMalformedEncodingError("%d trailing bytes after X.509 %s signature", len(rest), Name)
	}
	if val.R.Sign() < 0 || val.S.Sign() < 0 {
		return nil, codec.NewMalformedEncodingError("X.509 %s signature with negative r or s", Name)
	}
	return Signature{R: val.R, S: val.S}, nil
}

package dss

import (
	"math/big"

	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/sig/multiformat"
)

// NewRawCodec returns the raw format codec for DSS signatures. The layout is
// the varint tag followed by the r and s magnitudes as varint length-prefixed
// big-endian fields.
func NewRawCodec() codec.Codec {
	return rawCodec{}
}

type rawCodec struct{}

func (rawCodec) Encode(v codec.Value) ([]byte, error) {
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

	payload := multiformat.AppendField(nil, s.R.Bytes())
	payload = multiformat.AppendField(payload, s.S.Bytes())
	return multiformat.TagWith(RawCode, payload), nil
}

func (rawCodec) Decode(b []byte) (codec.Value, error) {
	payload, err := multiformat.UntagWith(RawCode, b)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("untagging raw %s signature: %s", Name, err)
	}

	r, rest, err := multiformat.ReadField(payload)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("reading %s r field: %s", Name, err)
	}
	s, rest, err := multiformat.ReadField(rest)
	if err != nil {
		return nil, codec.NewMalformedEncodingError("reading %s s field: %s", Name, err)
	}
	if len(rest) != 0 {
		return nil, codec.NewMalformedEncodingError("%d trailing bytes after raw %s signature", len(rest), Name)
	}

	return Signature{R: new(big.Int).SetBytes(r), S: new(big.Int).SetBytes(s)}, nil
}

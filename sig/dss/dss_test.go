package dss

import (
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/testing/helpers"
	"github.com/stretchr/testify/require"
)

func randomSignature() Signature {
	return Signature{
		R: new(big.Int).SetBytes(helpers.RandomBytes(20)),
		S: new(big.Int).SetBytes(helpers.RandomBytes(20)),
	}
}

func TestRawCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		sig := randomSignature()
		b := helpers.Must(NewRawCodec().Encode(sig))
		v := helpers.Must(NewRawCodec().Decode(b))
		require.True(t, sig.Equals(v.(Signature)))
	})

	t.Run("round trip zero values", func(t *testing.T) {
		sig := Signature{R: big.NewInt(0), S: big.NewInt(0)}
		b := helpers.Must(NewRawCodec().Encode(sig))
		v := helpers.Must(NewRawCodec().Decode(b))
		require.True(t, sig.Equals(v.(Signature)))
	})

	t.Run("encode missing field", func(t *testing.T) {
		var malformed *codec.MalformedValueError
		_, err := NewRawCodec().Encode(Signature{R: big.NewInt(1)})
		require.ErrorAs(t, err, &malformed)
		require.Equal(t, "MalformedValue", malformed.Name())
	})

	t.Run("encode negative field", func(t *testing.T) {
		var malformed *codec.MalformedValueError
		_, err := NewRawCodec().Encode(Signature{R: big.NewInt(-1), S: big.NewInt(1)})
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("encode wrong value type", func(t *testing.T) {
		var malformed *codec.MalformedValueError
		_, err := NewRawCodec().Encode(nil)
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("decode trailing bytes", func(t *testing.T) {
		b := helpers.Must(NewRawCodec().Encode(randomSignature()))
		var malformed *codec.MalformedEncodingError
		_, err := NewRawCodec().Decode(append(b, 0x00))
		require.ErrorAs(t, err, &malformed)
		require.Equal(t, "MalformedEncoding", malformed.Name())
	})

	t.Run("decode truncated", func(t *testing.T) {
		b := helpers.Must(NewRawCodec().Encode(randomSignature()))
		var malformed *codec.MalformedEncodingError
		_, err := NewRawCodec().Decode(b[:len(b)-1])
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("decode wrong tag", func(t *testing.T) {
		b := helpers.Must(NewX509Codec().Encode(randomSignature()))
		var malformed *codec.MalformedEncodingError
		_, err := NewRawCodec().Decode(b)
		require.ErrorAs(t, err, &malformed)
	})
}

func TestX509Codec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		sig := randomSignature()
		b := helpers.Must(NewX509Codec().Encode(sig))
		v := helpers.Must(NewX509Codec().Decode(b))
		require.True(t, sig.Equals(v.(Signature)))
	})

	t.Run("encode is DER sequence", func(t *testing.T) {
		b := helpers.Must(NewX509Codec().Encode(randomSignature()))

		var val struct {
			R *big.Int
			S *big.Int
		}
		rest, err := asn1.Unmarshal(b, &val)
		require.NoError(t, err)
		require.Empty(t, rest)
	})

	t.Run("encode missing field", func(t *testing.T) {
		var malformed *codec.MalformedValueError
		_, err := NewX509Codec().Encode(Signature{S: big.NewInt(1)})
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("decode negative integer", func(t *testing.T) {
		b := helpers.Must(asn1.Marshal(struct {
			R *big.Int
			S *big.Int
		}{big.NewInt(-5), big.NewInt(7)}))

		var malformed *codec.MalformedEncodingError
		_, err := NewX509Codec().Decode(b)
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("decode trailing bytes", func(t *testing.T) {
		b := helpers.Must(NewX509Codec().Encode(randomSignature()))
		var malformed *codec.MalformedEncodingError
		_, err := NewX509Codec().Decode(append(b, 0x00))
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("decode garbage", func(t *testing.T) {
		var malformed *codec.MalformedEncodingError
		_, err := NewX509Codec().Decode(helpers.RandomBytes(16))
		require.ErrorAs(t, err, &malformed)
	})
}

package sig

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/sig/dss"
	"github.com/storacha/go-sigcodec/sig/format"
	"github.com/storacha/go-sigcodec/sig/rsa/pkcs1v15"
	"github.com/storacha/go-sigcodec/sig/rsa/pss"
)

var ResolutionCacheSize = 128

// resolution is a parsed composed name. Codec instances are never cached,
// only the (family, format) pair a name resolves to.
type resolution struct {
	family Family
	format format.ID
}

var resolutions, _ = lru.New[string, resolution](ResolutionCacheSize)

// Codec returns the codec for a composed signature codec name. Empty,
// whitespace-only and names starting with "/" are misses. A trailing "/" is
// discarded and a missing format means the raw format, so "DSS/" and "DSS"
// both resolve to the raw DSS codec. Otherwise the name splits on the first
// "/" into algorithm and format.
func Codec(name string) (codec.Codec, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "/") {
		return nil, false
	}

	key := strings.ToLower(name)
	if res, ok := resolutions.Get(key); ok {
		return codecFor(res)
	}

	res := resolveName(name)
	resolutions.Add(key, res)
	return codecFor(res)
}

// CodecForFormat returns the codec for an algorithm name and an encoding
// format name. An unrecognized format is a miss.
func CodecForFormat(alg, formatName string) (codec.Codec, bool) {
	id := format.FromName(formatName)
	if id == format.Unknown {
		return nil, false
	}
	return CodecForFormatID(alg, id)
}

// CodecForFormatID returns the codec for an algorithm name and a format
// identifier. Codecs are stateless and constructed fresh per call.
func CodecForFormatID(alg string, id format.ID) (codec.Codec, bool) {
	return codecFor(resolution{family: FamilyOf(alg), format: id})
}

func resolveName(name string) resolution {
	if strings.HasSuffix(name, "/") {
		return resolution{family: FamilyOf(name[:len(name)-1]), format: format.Raw}
	}
	if i := strings.Index(name, "/"); i != -1 {
		return resolution{family: FamilyOf(name[:i]), format: format.FromName(name[i+1:])}
	}
	return resolution{family: FamilyOf(name), format: format.Raw}
}

func codecFor(res resolution) (codec.Codec, bool) {
	switch res.format {
	case format.Raw:
		switch res.family {
		case FamilyDSS:
			return dss.NewRawCodec(), true
		case FamilyRSAPKCS1v15:
			return pkcs1v15.NewRawCodec(), true
		case FamilyRSAPSS:
			return pss.NewRawCodec(), true
		}
	case format.X509:
		switch res.family {
		case FamilyDSS:
			return dss.NewX509Codec(), true
		case FamilyRSAPKCS1v15:
			return pkcs1v15.NewX509Codec(), true
		}
		// RSA-PSS signatures have no X.509 form.
	}
	return nil, false
}

// Package hash enumerates the message-digest algorithms available to
// signature algorithms parameterized by hash, and bridges their canonical
// names to the multihash table.
package hash

import (
	"fmt"
	"sort"
	"strings"

	"github.com/multiformats/go-multihash"
)

// Source reports the set of supported digest algorithm names. The signature
// codec catalog expands its hash-parameterized families with these.
type Source interface {
	Names() []string
}

var codes = map[string]uint64{
	"SHA1":        multihash.SHA1,
	"SHA256":      multihash.SHA2_256,
	"SHA512":      multihash.SHA2_512,
	"SHA3-256":    multihash.SHA3_256,
	"SHA3-512":    multihash.SHA3_512,
	"BLAKE2B-256": multihash.BLAKE2B_MIN + 31,
}

type defaultSource struct{}

func (defaultSource) Names() []string {
	names := make([]string, 0, len(codes))
	for name := range codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the source backed by the digests this module supports.
func Default() Source {
	return defaultSource{}
}

// Code resolves a case-insensitive digest name to its multihash code.
func Code(name string) (uint64, bool) {
	c, ok := codes[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

// Sum computes the named digest of data, returning the raw digest bytes.
func Sum(name string, data []byte) ([]byte, error) {
	code, ok := Code(name)
	if !ok {
		return nil, fmt.Errorf("unsupported digest: %s", name)
	}
	mh, err := multihash.Sum(data, code, -1)
	if err != nil {
		return nil, fmt.Errorf("computing %s digest: %s", name, err)
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		return nil, fmt.Errorf("decoding %s multihash: %s", name, err)
	}
	return dec.Digest, nil
}

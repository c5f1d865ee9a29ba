// Package sig resolves composed signature codec names to codecs. A composed
// name concatenates the canonical algorithm name, a forward slash and the
// canonical encoding format name, e.g. "DSS/X509" or "RSA-PSS-SHA256/Raw".
// When the format is missing the raw format is assumed.
package sig

import (
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/storacha/go-sigcodec/sig/codec"
	"github.com/storacha/go-sigcodec/sig/dss"
	"github.com/storacha/go-sigcodec/sig/rsa/pkcs1v15"
	"github.com/storacha/go-sigcodec/sig/rsa/pss"
)

// Canonical signature algorithm names.
const (
	NameDSS = dss.Name
	// NameDSA is accepted as an alias for the DSS family.
	NameDSA         = "DSA"
	NameRSAPKCS1v15 = pkcs1v15.Name
	NameRSAPSS      = pss.Name
)

// Family identifies a signature algorithm family. The set is closed: name
// parsing maps strings to a Family before any dispatch happens.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyDSS
	FamilyRSAPKCS1v15
	FamilyRSAPSS
)

func (f Family) String() string {
	switch f {
	case FamilyDSS:
		return NameDSS
	case FamilyRSAPKCS1v15:
		return NameRSAPKCS1v15
	case FamilyRSAPSS:
		return NameRSAPSS
	}
	return "Unknown"
}

// FamilyOf matches an algorithm name to its family. Matching is case-folded
// and never locale-sensitive: DSS and DSA match by equality, the RSA families
// by their canonical prefix, so a digest suffix like "RSA-PSS-SHA256" matches
// the PSS family.
func FamilyOf(name string) Family {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, NameDSS) || strings.EqualFold(name, NameDSA) {
		return FamilyDSS
	}

	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, strings.ToLower(NameRSAPKCS1v15)) {
		return FamilyRSAPKCS1v15
	}
	if strings.HasPrefix(lower, strings.ToLower(NameRSAPSS)) {
		return FamilyRSAPSS
	}
	return FamilyUnknown
}

// FormatSignature encodes a signature value with the given codec and returns
// it as a multibase (base64pad) string.
func FormatSignature(c codec.Codec, v codec.Value) (string, error) {
	b, err := c.Encode(v)
	if err != nil {
		return "", err
	}
	return multibase.Encode(multibase.Base64pad, b)
}

// ParseSignature decodes a multibase string produced by FormatSignature back
// to a signature value using the given codec.
func ParseSignature(c codec.Codec, str string) (codec.Value, error) {
	_, b, err := multibase.Decode(str)
	if err != nil {
		return nil, fmt.Errorf("decoding multibase string: %s", err)
	}
	return c.Decode(b)
}

package format

import "strings"

// ID identifies a signature encoding format.
type ID int

const (
	Unknown ID = iota
	Raw
	X509
)

// Canonical encoding format names.
const (
	RawName  = "Raw"
	X509Name = "X509"
)

// FromName resolves a case-insensitive format name to its identifier.
// Unrecognized names resolve to Unknown rather than an error, so callers can
// treat them as "no such format".
func FromName(name string) ID {
	switch {
	case strings.EqualFold(name, RawName):
		return Raw
	case strings.EqualFold(name, X509Name):
		return X509
	}
	return Unknown
}

func (id ID) String() string {
	switch id {
	case Raw:
		return RawName
	case X509:
		return X509Name
	}
	return "Unknown"
}

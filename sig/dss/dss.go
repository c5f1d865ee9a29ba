// Package dss implements signature codecs for the DSS (DSA) algorithm
// family.
package dss

import (
	"math/big"
)

const Name = "DSS"

// RawCode tags the raw layout of a DSS signature.
const RawCode = 0xd0d5

// Signature is a DSS signature value, the pair of integers produced by DSA
// signing.
type Signature struct {
	R *big.Int
	S *big.Int
}

func (s Signature) Algorithm() string {
	return Name
}

// Equals reports whether both signatures carry the same r and s.
func (s Signature) Equals(other Signature) bool {
	if s.R == nil || s.S == nil || other.R == nil || other.S == nil {
		return false
	}
	return s.R.Cmp(other.R) == 0 && s.S.Cmp(other.S) == 0
}

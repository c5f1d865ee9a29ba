package codec

// Value is an algorithm-specific signature value. Concrete types live in the
// per-family packages. Codecs never retain a value beyond a call.
type Value interface {
	// Algorithm returns the canonical name of the algorithm family the value
	// belongs to.
	Algorithm() string
}

// Codec encodes and decodes signature values for one (algorithm family,
// encoding format) combination. Implementations are stateless and cheap to
// construct.
type Codec interface {
	// Encode serializes a signature value. It fails with a
	// MalformedValueError if the value's shape does not match what the
	// algorithm family requires.
	Encode(v Value) ([]byte, error)
	// Decode parses an encoded signature back to its in-memory value. It
	// fails with a MalformedEncodingError if the bytes do not match the
	// expected format grammar.
	Decode(b []byte) (Value, error)
}

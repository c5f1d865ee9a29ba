package multiformat

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-varint"
)

// TagWith prefixes payload with the varint encoding of code.
func TagWith(code uint64, payload []byte) []byte {
	offset := varint.UvarintSize(code)
	tagged := make([]byte, offset+len(payload))
	varint.PutUvarint(tagged, code)
	copy(tagged[offset:], payload)
	return tagged
}

// UntagWith strips the varint tag from source, verifying it matches code.
func UntagWith(code uint64, source []byte) ([]byte, error) {
	tag, err := varint.ReadUvarint(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("reading tag: %s", err)
	}
	if tag != code {
		return nil, fmt.Errorf("expected multiformat with 0x%x tag instead got 0x%x", code, tag)
	}
	return source[varint.UvarintSize(tag):], nil
}

// AppendField appends a varint length prefix followed by the field bytes to
// buf, returning the extended buffer.
func AppendField(buf, field []byte) []byte {
	prefix := varint.UvarintSize(uint64(len(field)))
	offset := len(buf)
	buf = append(buf, make([]byte, prefix+len(field))...)
	varint.PutUvarint(buf[offset:], uint64(len(field)))
	copy(buf[offset+prefix:], field)
	return buf
}

// ReadField reads one length-prefixed field from b, returning the field bytes
// and the remainder of b.
func ReadField(b []byte) (field []byte, rest []byte, err error) {
	size, err := varint.ReadUvarint(bytes.NewReader(b))
	if err != nil {
		return nil, nil, fmt.Errorf("reading field size: %s", err)
	}
	offset := varint.UvarintSize(size)
	if uint64(len(b)-offset) < size {
		return nil, nil, fmt.Errorf("field size %d exceeds %d remaining bytes", size, len(b)-offset)
	}
	end := offset + int(size)
	return b[offset:end], b[end:], nil
}

package strike

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in `binary.Size` on every call.
// Records are decoded concurrently by independent callers, so the cache is an xsync.Map.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed provides a generic `Codec` implementation for any record `Payload`
// composed of fixed-size fields, laid out exactly as declared with no padding.
//
// Constraint: The `Payload` type MUST NOT contain variable-size fields like slices,
// maps, or strings, as this will cause `binary.Size` to fail.
type Fixed[Payload any] struct {
	Payload Payload
}

// Statically assert that Fixed implements Codec.
var _ Codec = (*Fixed[struct{}])(nil)

// SizeOf returns the encoded size of Payload, or -1 if it is not fixed-size.
func SizeOf[Payload any]() int {
	t := reflect.TypeFor[Payload]()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	var zero Payload
	size := binary.Size(&zero)
	sizeCache.Store(t, size)
	return size
}

// Size returns the fixed size of the record in bytes.
func (c *Fixed[Payload]) Size() int { return SizeOf[Payload]() }

// MarshalBinary implements `encoding.BinaryMarshaler`.
func (c *Fixed[Payload]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, Order, &c.Payload); err != nil {
		return nil, io.ErrShortWrite
	}
	return buf, nil
}

// UnmarshalBinary implements `encoding.BinaryUnmarshaler`.
// Anything after the record must be zero.
func (c *Fixed[Payload]) UnmarshalBinary(data []byte) error {
	n, err := binary.Decode(data, Order, &c.Payload)
	if err != nil {
		return &TruncatedInputError{Need: c.Size(), Have: len(data)}
	}
	return CheckZeros(int64(n), data[n:])
}

// ReadFrom implements `io.ReaderFrom`, decoding the record straight from a stream.
func (c *Fixed[Payload]) ReadFrom(r io.Reader) (int64, error) {
	if err := binary.Read(r, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// WriteTo implements `io.WriterTo`, encoding the record straight into a stream.
func (c *Fixed[Payload]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// MarshalTo marshals the record into the provided slice `p`.
func (c *Fixed[Payload]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, Order, &c.Payload)
	if err != nil {
		return n, io.ErrShortBuffer
	}
	return n, nil
}

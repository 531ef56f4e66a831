package strike

import (
	"encoding"
	"io"
)

// Sizer reports how many bytes a value occupies once encoded.
type Sizer interface {
	Size() int
}

// Marshaler encodes a value to a fresh slice, a caller-owned slice or a stream.
type Marshaler interface {
	encoding.BinaryMarshaler
	io.WriterTo

	// MarshalTo encodes into p and fails with io.ErrShortBuffer,
	// leaving p untouched, when p is smaller than Size.
	MarshalTo(p []byte) (int, error)
}

// Unmarshaler decodes a value from a complete buffer or a stream.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler
	io.ReaderFrom
}

// Codec is implemented by fixed records and by whole containers alike.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}

package strike

import "io"

// BytesReader is an io.Reader that reads from a pre-allocated byte slice.
type BytesReader struct {
	B []byte // source slice
	N int    // current read position
}

// NewBytesReader creates a new BytesReader.
func NewBytesReader(b []byte) *BytesReader {
	return &BytesReader{B: b}
}

// Read implements the [io.Reader] interface.
func (r *BytesReader) Read(p []byte) (int, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	n := copy(p, r.B[r.N:])
	r.N += n
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *BytesReader) ReadByte() (byte, error) {
	if r.N >= len(r.B) {
		return 0, io.EOF
	}
	b := r.B[r.N]
	r.N++
	return b, nil
}

// next returns a view of the next n bytes and advances past them.
// The caller must have checked Available.
func (r *BytesReader) next(n int) []byte {
	b := r.B[r.N : r.N+n : r.N+n]
	r.N += n
	return b
}

// Size returns the size of the underlying byte slice.
func (r *BytesReader) Size() int { return len(r.B) }

// Available returns the number of bytes available for reading.
func (r *BytesReader) Available() int {
	length := len(r.B) - r.N
	if length <= 0 {
		return 0
	}
	return length
}

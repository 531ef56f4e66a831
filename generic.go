package strike

import (
	"bytes"
	"encoding"
	"io"
)

// ReadFromGeneric implements io.ReaderFrom for a value that can only be
// decoded from a complete buffer. r is drained into a pooled buffer first,
// so this does not stream. v must not retain the slice it is given.
func ReadFromGeneric[T encoding.BinaryUnmarshaler](v T, r io.Reader) (int64, error) {
	if r == nil {
		return 0, ErrNilIO
	}
	buf := bytesBufPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bytesBufPool.Put(buf)
	}()

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return n, v.UnmarshalBinary(buf.Bytes())
}

// WriteToGeneric implements io.WriterTo by encoding v in one piece and
// handing the result to w.
func WriteToGeneric[T encoding.BinaryMarshaler](v T, w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrNilIO
	}
	data, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// MarshalToGeneric implements MarshalTo for a value whose encoder only
// produces fresh slices. Nothing is copied into p unless the whole encoding fits.
func MarshalToGeneric[T interface {
	Sizer
	encoding.BinaryMarshaler
}](v T, p []byte) (int, error) {
	if len(p) < v.Size() {
		return 0, io.ErrShortBuffer
	}
	data, err := v.MarshalBinary()
	switch {
	case err != nil:
		return 0, err
	case len(p) < len(data):
		return 0, io.ErrShortBuffer
	}
	return copy(p, data), nil
}

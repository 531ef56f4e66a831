package strike

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Reader is a cursor over an in-memory buffer that simplifies reading binary data.
// It tracks the absolute offset of every byte and the first error.
// Subsequent reads become no-ops, so a sequence of reads needs a single Err check.
type Reader struct {
	r     *BytesReader
	base  int64 // absolute offset of r.B[0]
	err   error // first error encountered.
	order binary.ByteOrder
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
)

// NewReader creates a Reader over b. Offsets start at zero.
func NewReader(b []byte) *Reader {
	return &Reader{r: NewBytesReader(b), order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

func (r *Reader) Size() int      { return r.r.Size() }
func (r *Reader) Available() int { return r.r.Available() }
func (r *Reader) Err() error     { return r.err }

// Offset returns the absolute position of the next byte to be read.
func (r *Reader) Offset() int64 { return r.base + int64(r.r.N) }

// Fail records err as the reader's error unless one is already latched.
// Format-level checks use it so that a decode reports one root cause.
func (r *Reader) Fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *Reader) truncated(n int) error {
	return &TruncatedInputError{Offset: r.Offset(), Need: n, Have: r.r.Available()}
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.r.Read(p)
}

// readFull returns a view of exactly n bytes, or nil after latching an error.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.err = ErrNegativeSize
		return nil
	}
	if r.r.Available() < n {
		r.err = r.truncated(n)
		return nil
	}
	return r.r.next(n)
}

// ReadBytes reads exactly n bytes and returns a new byte slice.
func (r *Reader) ReadBytes(n int) []byte {
	buf := r.readFull(n)
	if buf == nil {
		return nil
	}
	return append([]byte(nil), buf...)
}

// Expect reads len(want) bytes and fails with *UnexpectedMagicError
// when they differ from want.
func (r *Reader) Expect(want []byte) {
	offset := r.Offset()
	got := r.readFull(len(want))
	if r.err != nil {
		return
	}
	r.Fail(CheckMagic(offset, want, got))
}

// Sub carves a bounded view over the next n bytes and advances past them.
// The view reports absolute offsets, and none of its reads can cross its end.
// If r has already failed, the view carries the same error.
func (r *Reader) Sub(n int) *Reader {
	offset := r.Offset()
	buf := r.readFull(n)
	if r.err != nil {
		return &Reader{r: NewBytesReader(nil), base: offset, err: r.err, order: r.order}
	}
	return &Reader{r: NewBytesReader(buf), base: offset, order: r.order}
}

// Done fails with *LengthMismatchError unless every byte of the reader was consumed.
// section names the region in the error.
func (r *Reader) Done(section string) error {
	if r.err == nil && r.r.Available() > 0 {
		r.err = &LengthMismatchError{
			Section:  section,
			Offset:   r.base,
			Declared: int64(r.r.Size()),
			Actual:   int64(r.r.N),
		}
	}
	return r.err
}

// ReadTo decodes a record from the reader into an io.ReaderFrom such as Fixed.
// A short record becomes a *TruncatedInputError at the record start.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.err = ErrReadToNil
		return
	}
	offset, have := r.Offset(), r.r.Available()
	if _, err := w.ReadFrom(r.r); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			need := have + 1
			if s, ok := w.(Sizer); ok {
				need = s.Size()
			}
			err = &TruncatedInputError{Offset: offset, Need: need, Have: have}
		}
		r.err = err
	}
}

// ReadCString reads bytes up to a NUL terminator and returns them without it.
// An exhausted reader yields "" rather than an error: string pools use that
// as their end marker. Bytes with no terminator fail as truncated input.
func (r *Reader) ReadCString() string {
	if r.err != nil || r.r.Available() == 0 {
		return ""
	}
	rest := r.r.B[r.r.N:]
	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		r.err = r.truncated(len(rest) + 1)
		return ""
	}
	s := string(rest[:i])
	r.r.N += i + 1
	return s
}

// --- Primitive Read Operations ---

func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err != nil {
		r.err = r.truncated(1)
		return 0, r.err
	}
	return b, nil
}

func (r *Reader) ReadUint8(dest *uint8) {
	if b, err := r.ReadByte(); err == nil {
		*dest = b
	}
}

func (r *Reader) ReadInt8(dest *int8) {
	if b, err := r.ReadByte(); err == nil {
		*dest = int8(b)
	}
}

// ReadBool8 reads a byte that must be literally 0 or 1.
func (r *Reader) ReadBool8(dest *bool) {
	offset := r.Offset()
	b, err := r.ReadByte()
	if err != nil {
		return
	}
	v, err := CheckBool8(offset, b)
	if err != nil {
		r.err = err
		return
	}
	*dest = v
}

func (r *Reader) ReadUint16(dest *uint16) {
	buf := r.readFull(2)
	if r.err == nil {
		*dest = r.order.Uint16(buf)
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = r.order.Uint32(buf)
	}
}

func (r *Reader) ReadInt32(dest *int32) {
	buf := r.readFull(4)
	if r.err == nil {
		*dest = int32(r.order.Uint32(buf))
	}
}

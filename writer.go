package strike

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Writer provides a growing in-memory sink that simplifies writing binary data.
// It tracks the absolute offset of every byte and the first error that occurs.
// After an error, all subsequent write operations become no-ops.
type Writer struct {
	buf   bytes.Buffer
	base  int64 // absolute offset of the first byte in buf
	err   error // first error encountered. Subsequent writes become no-ops.
	order binary.ByteOrder
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
)

// NewWriter creates a Writer whose first byte sits at offset zero.
func NewWriter() *Writer {
	return &Writer{order: Order}
}

// NewWriterAt creates a Writer whose first byte sits at offset base.
// Section payloads are buffered in such writers so that errors raised
// while building them still point into the final container.
func NewWriterAt(base int64) *Writer {
	return &Writer{base: base, order: Order}
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

func (w *Writer) Len() int      { return w.buf.Len() }
func (w *Writer) Err() error    { return w.err }
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Offset returns the absolute position of the next byte to be written.
func (w *Writer) Offset() int64 { return w.base + int64(w.buf.Len()) }

// Fail records err unless an earlier error is already latched.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result returns the written bytes and the final error state.
// On error no bytes are returned.
func (w *Writer) Result() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.WriteString(s)
}

// WriteFrom encodes a record such as Fixed into the writer.
func (w *Writer) WriteFrom(wt io.WriterTo) {
	if w.err != nil {
		return
	}
	if wt == nil {
		w.err = ErrWriteToNil
		return
	}
	_, err := wt.WriteTo(w)
	w.Fail(err)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(p []byte) {
	_, _ = w.Write(p)
}

// WriteCString writes s followed by a NUL terminator.
func (w *Writer) WriteCString(s string) {
	_, _ = w.WriteString(s)
	_ = w.WriteByte(0)
}

// WriteZeros writes n zero bytes, often for padding.
func (w *Writer) WriteZeros(n int64) {
	if w.err != nil || n <= 0 {
		return
	}
	for n > BUFFER_SIZE {
		w.buf.Write(empty[:])
		n -= BUFFER_SIZE
	}
	w.buf.Write(empty[:n])
}

// Align writes zero bytes until the absolute offset is a multiple of n.
func (w *Writer) Align(n int) {
	if n > 1 {
		w.WriteZeros(Padding(w.Offset(), int64(n)))
	}
}

// --- Primitive Write Operations ---

func (w *Writer) WriteByte(v byte) error {
	if w.err != nil {
		return w.err
	}
	return w.buf.WriteByte(v)
}

func (w *Writer) WriteUint8(v uint8) {
	_ = w.WriteByte(v)
}

func (w *Writer) WriteInt8(v int8) {
	_ = w.WriteByte(uint8(v))
}

func (w *Writer) WriteBool8(v bool) {
	if v {
		_ = w.WriteByte(1)
	} else {
		_ = w.WriteByte(0)
	}
}

func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

package strike

import "math"

// SectionHeaderSize is the size of a section frame: a 4-byte tag and a u32 length.
const SectionHeaderSize = 8

// Section consumes a section frame with the given 4-byte tag and returns a
// reader bounded to its payload. A wrong tag fails with *UnexpectedMagicError,
// a payload longer than the remaining input with *TruncatedInputError.
func (r *Reader) Section(tag string) *Reader {
	r.Expect([]byte(tag))
	var length uint32
	r.ReadUint32(&length)
	return r.Sub(int(length))
}

// WriteSection buffers the payload produced by fn, then emits tag, the
// payload length and the payload. fn sees offsets as they will appear in
// the final output. An error latched by fn is propagated and nothing is written.
func (w *Writer) WriteSection(tag string, fn func(payload *Writer)) {
	if w.err != nil {
		return
	}
	payload := NewWriterAt(w.Offset() + SectionHeaderSize).WithByteOrder(w.order)
	fn(payload)
	body, err := payload.Result()
	if err != nil {
		w.err = err
		return
	}
	if uint64(len(body)) > math.MaxUint32 {
		w.err = &LengthMismatchError{Section: tag, Offset: w.Offset(), Declared: math.MaxUint32, Actual: int64(len(body))}
		return
	}
	_, _ = w.WriteString(tag)
	w.WriteUint32(uint32(len(body)))
	w.WriteBytes(body)
}

package strike

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNilIO indicates that a Codec adapter was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("strike: called with a nil io.Reader/io.Writer")

	// ErrWriteToNil indicates a WriteFrom operation was given a nil io.WriterTo.
	ErrWriteToNil = errors.New("strike: WriteFrom called with a nil io.WriterTo")

	// ErrReadToNil indicates a ReadTo operation was given a nil io.ReaderFrom.
	ErrReadToNil = errors.New("strike: ReadTo called with a nil io.ReaderFrom")

	// ErrNegativeSize indicates a read, substream or padding request with a negative length.
	ErrNegativeSize = errors.New("strike: negative size")
)

// TruncatedInputError reports that fewer bytes were available than a read required.
type TruncatedInputError struct {
	Offset int64 // where the short read started
	Need   int   // bytes requested
	Have   int   // bytes that were left
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("strike: truncated input at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// Unwrap lets callers treat truncation like any other short read.
func (e *TruncatedInputError) Unwrap() error { return io.ErrUnexpectedEOF }

// UnexpectedMagicError reports a signature, section tag or reserved constant
// that does not match the format.
type UnexpectedMagicError struct {
	Expected []byte
	Actual   []byte
	Offset   int64
}

func (e *UnexpectedMagicError) Error() string {
	return fmt.Sprintf("strike: expected % x, but was % x at offset %d", e.Expected, e.Actual, e.Offset)
}

// InvalidBooleanError reports a bool8 byte that is neither 0 nor 1.
type InvalidBooleanError struct {
	Offset int64
	Value  byte
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("strike: expected bool8 at offset %d to be 0 or 1, but was 0x%02x", e.Offset, e.Value)
}

// LengthMismatchError reports a declared length that disagrees with the
// number of bytes a section actually needs or holds.
type LengthMismatchError struct {
	Section  string // section tag, or "" for the whole container
	Offset   int64  // start of the region whose length is wrong
	Declared int64
	Actual   int64
}

func (e *LengthMismatchError) Error() string {
	what := "container"
	if e.Section != "" {
		what = fmt.Sprintf("section %q", e.Section)
	}
	return fmt.Sprintf("strike: %s at offset %d declares %d bytes, but has %d", what, e.Offset, e.Declared, e.Actual)
}

// CheckMagic compares actual against expected and returns an
// *UnexpectedMagicError positioned at offset on mismatch.
func CheckMagic(offset int64, expected, actual []byte) error {
	if string(expected) == string(actual) {
		return nil
	}
	return &UnexpectedMagicError{
		Expected: append([]byte(nil), expected...),
		Actual:   append([]byte(nil), actual...),
		Offset:   offset,
	}
}

// CheckBool8 interprets v as a bool8, accepting only 0 and 1.
func CheckBool8(offset int64, v byte) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &InvalidBooleanError{Offset: offset, Value: v}
}

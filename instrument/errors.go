package instrument

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilInstrument indicates Encode was called with a nil *Instrument.
var ErrNilInstrument = errors.New("instrument: nil instrument")

// UnknownCommandError reports a mapping command outside the allow-list.
type UnknownCommandError struct {
	Command Command
	Offset  int64
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("instrument: unknown command %s at offset %d", e.Command, e.Offset)
}

// UnknownGroupError reports a header group ordinal outside the 20 known groups.
type UnknownGroupError struct {
	Ordinal uint8
	Offset  int64
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("instrument: unknown group ordinal %d at offset %d", e.Ordinal, e.Offset)
}

// InvalidSamplePathError reports a sample path the string table cannot hold:
// empty, or containing a NUL byte.
type InvalidSamplePathError struct {
	Path   string
	Offset int64 // of the index field in the mapping record
}

func (e *InvalidSamplePathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("instrument: empty sample path for mapping at offset %d", e.Offset)
	}
	return fmt.Sprintf("instrument: sample path %q for mapping at offset %d contains NUL", e.Path, e.Offset)
}

// StringIndexOutOfRangeError reports a mapping that references a string
// slot the table does not have.
type StringIndexOutOfRangeError struct {
	Index     int
	TableSize int
	Offset    int64 // of the index field in the mapping record
}

func (e *StringIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("instrument: string index %d at offset %d out of range for table of %d", e.Index, e.Offset, e.TableSize)
}

// CountOverflowError reports more items than a wire counter can address.
type CountOverflowError struct {
	What  string
	Count int
	Max   int
}

func (e *CountOverflowError) Error() string {
	return fmt.Sprintf("instrument: %d %s exceed the maximum of %d", e.Count, e.What, e.Max)
}

// InvalidInstrumentError carries every rule an instrument violates.
type InvalidInstrumentError struct {
	Violations []Violation
}

func (e *InvalidInstrumentError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "instrument: invalid instrument: " + strings.Join(parts, "; ")
}

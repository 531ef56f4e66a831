package instrument

import (
	"io"

	"github.com/oy3o/strike"
)

const (
	signature = "INST"
	alignment = 4
)

var _ strike.Codec = (*Instrument)(nil)

type options struct {
	intern bool
}

// Option configures Encode.
type Option func(*options)

// WithInternedPaths makes mappings that share a sample path share one
// string-table slot. By default every mapping gets its own slot in mapping
// order, which is how the device writes files.
func WithInternedPaths() Option {
	return func(o *options) { o.intern = true }
}

// Decode parses an INST container. path is recorded on the result and is
// otherwise opaque. With validate set, an instrument that breaks any rule
// fails with *InvalidInstrumentError. On error no instrument is returned.
func Decode(path string, data []byte, validate bool) (*Instrument, error) {
	inst := &Instrument{Path: path}
	if err := inst.decode(data); err != nil {
		return nil, err
	}
	if validate {
		if err := Check(inst); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Encode serializes inst into an INST container. With validate set, inst is
// checked first and fails exactly as Decode would. On error no bytes are returned.
func Encode(inst *Instrument, validate bool, opts ...Option) ([]byte, error) {
	if inst == nil {
		return nil, ErrNilInstrument
	}
	if validate {
		if err := Check(inst); err != nil {
			return nil, err
		}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := strike.NewWriter()
	_, _ = w.WriteString(signature)
	encodeHeader(w, inst)
	table := newStringTable(o.intern)
	encodeMappings(w, inst, table)
	encodeStrings(w, table.entries)
	w.Align(alignment)
	return w.Result()
}

// decode fills inst from data, leaving Path alone. inst is only modified on success.
func (inst *Instrument) decode(data []byte) error {
	if len(data)%alignment != 0 {
		return &strike.LengthMismatchError{
			Declared: strike.Roundup(int64(len(data)), alignment),
			Actual:   int64(len(data)),
		}
	}

	r := strike.NewReader(data)
	r.Expect([]byte(signature))
	if err := r.Err(); err != nil {
		return err
	}

	next := Instrument{Path: inst.Path}
	if err := decodeHeader(r, &next); err != nil {
		return err
	}
	raws, err := decodeMappings(r, &next)
	if err != nil {
		return err
	}
	table, err := decodeStrings(r)
	if err != nil {
		return err
	}
	if err := checkPadding(r); err != nil {
		return err
	}
	if next.SampleMappings, err = resolve(raws, table); err != nil {
		return err
	}
	*inst = next
	return nil
}

// checkPadding accepts only the zero bytes that align the container.
func checkPadding(r *strike.Reader) error {
	offset := r.Offset()
	if rest := r.Available(); rest >= alignment {
		return &strike.LengthMismatchError{
			Declared: strike.Roundup(offset, alignment),
			Actual:   offset + int64(rest),
		}
	}
	return strike.CheckZeros(offset, r.ReadBytes(r.Available()))
}

// Size returns the length of the container MarshalBinary produces.
func (inst *Instrument) Size() int {
	n := len(signature) + 4 + headerSize()
	n += strike.SectionHeaderSize + prologueSize + len(inst.SampleMappings)*recordSize
	n += strike.SectionHeaderSize
	for _, m := range inst.SampleMappings {
		n += len(m.SamplePath) + 1
	}
	return strike.Roundup(n, alignment)
}

// MarshalBinary encodes inst without validating it.
func (inst *Instrument) MarshalBinary() ([]byte, error) {
	return Encode(inst, false)
}

// UnmarshalBinary decodes data into inst without validating it. Path is kept.
func (inst *Instrument) UnmarshalBinary(data []byte) error {
	return inst.decode(data)
}

func (inst *Instrument) MarshalTo(p []byte) (int, error) {
	return strike.MarshalToGeneric(inst, p)
}

func (inst *Instrument) WriteTo(w io.Writer) (int64, error) {
	return strike.WriteToGeneric(inst, w)
}

func (inst *Instrument) ReadFrom(r io.Reader) (int64, error) {
	return strike.ReadFromGeneric(inst, r)
}

package instrument

import (
	"math"
	"strings"

	"github.com/oy3o/strike"
)

const (
	tagMappings = "msmp"

	prologueSize = 4  // cycle mode, Unknown0, count, Unknown1
	recordSize   = 28 // one sample mapping record
	maxMappings  = math.MaxUint8
)

var (
	reserved3 = []byte{0, 0, 0}
	reserved4 = []byte{0, 0, 0, 0}
	reserved2 = []byte{0, 0}
)

// rawMapping is a decoded record whose sample path is still a string-table index.
type rawMapping struct {
	index   uint16
	offset  int64 // of the index field
	mapping SampleMapping
}

// decodeMappings reads the msmp section: the prologue into inst, and the
// records with their string indices left unresolved.
func decodeMappings(r *strike.Reader, inst *Instrument) ([]rawMapping, error) {
	sec := r.Section(tagMappings)
	start := sec.Offset()

	var cycle int8
	var count uint8
	sec.ReadInt8(&cycle)
	sec.ReadUint8(&inst.Unknown0)
	sec.ReadUint8(&count)
	sec.ReadUint8(&inst.Unknown1)
	if err := sec.Err(); err != nil {
		return nil, err
	}
	if want := prologueSize + int(count)*recordSize; sec.Size() != want {
		return nil, &strike.LengthMismatchError{
			Section:  tagMappings,
			Offset:   start,
			Declared: int64(sec.Size()),
			Actual:   int64(want),
		}
	}
	inst.CycleMode = CycleRoundRobin
	if cycle != 0 {
		inst.CycleMode = CycleRandom
	}

	raws := make([]rawMapping, count)
	for i := range raws {
		decodeRecord(sec, &raws[i])
	}
	if err := sec.Done(tagMappings); err != nil {
		return nil, err
	}
	return raws, nil
}

func decodeRecord(r *strike.Reader, raw *rawMapping) {
	m := &raw.mapping
	raw.offset = r.Offset()
	r.ReadUint16(&raw.index)

	at := r.Offset()
	var cmd uint8
	r.ReadUint8(&cmd)
	m.Command = Command(cmd)
	if r.Err() == nil && !m.Command.Valid() {
		r.Fail(&UnknownCommandError{Command: m.Command, Offset: at})
		return
	}

	r.ReadUint8(&m.MinVelocity)
	r.ReadUint8(&m.MaxVelocity)
	r.ReadUint8(&m.Unknown2)
	r.ReadUint8(&m.Unknown3)
	r.ReadInt8(&m.Unknown4)
	r.ReadUint8(&m.Unknown5)
	r.ReadInt8(&m.Unknown6)
	r.ReadUint8(&m.HihatOpenMin)
	r.ReadUint8(&m.HihatOpenMax)
	r.ReadUint8(&m.Unknown7)
	r.ReadUint8(&m.Unknown8)
	r.Expect(reserved3)
	r.ReadUint8(&m.Unknown9)
	r.ReadUint8(&m.Unknown10)
	r.ReadUint8(&m.Unknown11)
	r.Expect(reserved4)
	r.ReadUint8(&m.Unknown12)
	r.ReadUint8(&m.Unknown13)
	r.Expect(reserved2)
}

// encodeMappings writes the msmp section, adding each sample path to table
// and storing the slot it was given.
func encodeMappings(w *strike.Writer, inst *Instrument, table *stringTable) {
	if n := len(inst.SampleMappings); n > maxMappings {
		w.Fail(&CountOverflowError{What: "sample mappings", Count: n, Max: maxMappings})
		return
	}
	w.WriteSection(tagMappings, func(p *strike.Writer) {
		p.WriteBool8(inst.CycleMode == CycleRandom)
		p.WriteUint8(inst.Unknown0)
		p.WriteUint8(uint8(len(inst.SampleMappings)))
		p.WriteUint8(inst.Unknown1)
		for i := range inst.SampleMappings {
			encodeRecord(p, &inst.SampleMappings[i], table)
		}
	})
}

func encodeRecord(w *strike.Writer, m *SampleMapping, table *stringTable) {
	if m.SamplePath == "" || strings.IndexByte(m.SamplePath, 0) >= 0 {
		w.Fail(&InvalidSamplePathError{Path: m.SamplePath, Offset: w.Offset()})
		return
	}
	index, err := table.add(m.SamplePath)
	if err != nil {
		w.Fail(err)
		return
	}
	w.WriteUint16(index)
	if !m.Command.Valid() {
		w.Fail(&UnknownCommandError{Command: m.Command, Offset: w.Offset()})
		return
	}
	w.WriteUint8(uint8(m.Command))
	w.WriteUint8(m.MinVelocity)
	w.WriteUint8(m.MaxVelocity)
	w.WriteUint8(m.Unknown2)
	w.WriteUint8(m.Unknown3)
	w.WriteInt8(m.Unknown4)
	w.WriteUint8(m.Unknown5)
	w.WriteInt8(m.Unknown6)
	w.WriteUint8(m.HihatOpenMin)
	w.WriteUint8(m.HihatOpenMax)
	w.WriteUint8(m.Unknown7)
	w.WriteUint8(m.Unknown8)
	w.WriteBytes(reserved3)
	w.WriteUint8(m.Unknown9)
	w.WriteUint8(m.Unknown10)
	w.WriteUint8(m.Unknown11)
	w.WriteBytes(reserved4)
	w.WriteUint8(m.Unknown12)
	w.WriteUint8(m.Unknown13)
	w.WriteBytes(reserved2)
}

// resolve replaces each record's string index with the path it names.
func resolve(raws []rawMapping, table []string) ([]SampleMapping, error) {
	mappings := make([]SampleMapping, len(raws))
	for i, raw := range raws {
		if int(raw.index) >= len(table) {
			return nil, &StringIndexOutOfRangeError{Index: int(raw.index), TableSize: len(table), Offset: raw.offset}
		}
		mappings[i] = raw.mapping
		mappings[i].SamplePath = table[raw.index]
	}
	return mappings, nil
}

package instrument

import "github.com/oy3o/strike"

// headerRecord is the fixed parameter block that follows the signature.
// Field order is wire order; ReservedN runs are format constants.
type headerRecord struct {
	Reserved0 [1]byte
	Group     uint8
	Reserved1 [2]byte
	Reserved2 [2]byte
	Level     uint8
	Pan       int8
	Decay     uint8
	Reserved3 [2]byte
	Semi      int8
	Fine      int8
	CutOff    uint8
	HiPass    uint8
	VelDecay  int8
	VelPitch  int8
	VelFilter int8
	VelLevel  int8
	Reserved4 [2]byte
	LoopOn    uint8
	Reserved5 [2]byte
}

type header = strike.Fixed[headerRecord]

// headerLayout lists, in byte order, every header byte that is not free
// data: reserved runs with their constant value, and the two bool8 flags.
var headerLayout = []struct {
	offset int64
	want   []byte // nil for a bool8 flag
	field  func(*headerRecord) []byte
}{
	{0, []byte{0}, func(h *headerRecord) []byte { return h.Reserved0[:] }},
	{2, []byte{1, 0}, func(h *headerRecord) []byte { return h.Reserved1[:] }},
	{4, []byte{0, 0}, func(h *headerRecord) []byte { return h.Reserved2[:] }},
	{9, []byte{0, 0}, func(h *headerRecord) []byte { return h.Reserved3[:] }},
	{14, nil, func(h *headerRecord) []byte { return []byte{h.HiPass} }},
	{19, []byte{0, 0x7F}, func(h *headerRecord) []byte { return h.Reserved4[:] }},
	{21, nil, func(h *headerRecord) []byte { return []byte{h.LoopOn} }},
	{22, []byte{0, 0}, func(h *headerRecord) []byte { return h.Reserved5[:] }},
}

// groupOffset is the position of the group ordinal within the header.
const groupOffset = 1

// headerSize is the value written to the header length field.
func headerSize() int { return strike.SizeOf[headerRecord]() }

// decodeHeader reads the u32 header length and the header block into inst.
func decodeHeader(r *strike.Reader, inst *Instrument) error {
	var length uint32
	r.ReadUint32(&length)
	sub := r.Sub(int(length))
	base := sub.Offset()

	var h header
	sub.ReadTo(&h)
	if sub.Err() != nil {
		return sub.Err()
	}
	rec := &h.Payload
	for _, c := range headerLayout {
		var err error
		if c.want == nil {
			_, err = strike.CheckBool8(base+c.offset, c.field(rec)[0])
		} else {
			err = strike.CheckMagic(base+c.offset, c.want, c.field(rec))
		}
		if err != nil {
			return err
		}
	}
	if err := sub.Done("header"); err != nil {
		return err
	}
	if !GroupOf(rec.Group).Valid() {
		return &UnknownGroupError{Ordinal: rec.Group, Offset: base + groupOffset}
	}

	inst.Group = GroupOf(rec.Group)
	inst.Level = rec.Level
	inst.Pan = rec.Pan
	inst.Decay = rec.Decay
	inst.Semi = rec.Semi
	inst.Fine = rec.Fine
	inst.CutOff = rec.CutOff
	inst.FilterType = FilterLoPass
	if rec.HiPass == 1 {
		inst.FilterType = FilterHiPass
	}
	inst.VelDecay = rec.VelDecay
	inst.VelPitch = rec.VelPitch
	inst.VelFilter = rec.VelFilter
	inst.VelLevel = rec.VelLevel
	inst.LoopOn = rec.LoopOn == 1
	return nil
}

// encodeHeader writes the u32 header length and the header block for inst.
func encodeHeader(w *strike.Writer, inst *Instrument) {
	if !inst.Group.Valid() {
		w.Fail(&UnknownGroupError{Ordinal: inst.Group.Ordinal(), Offset: w.Offset() + 4 + groupOffset}) // past the length field
		return
	}
	h := header{Payload: headerRecord{
		Group:     inst.Group.Ordinal(),
		Level:     inst.Level,
		Pan:       inst.Pan,
		Decay:     inst.Decay,
		Semi:      inst.Semi,
		Fine:      inst.Fine,
		CutOff:    inst.CutOff,
		VelDecay:  inst.VelDecay,
		VelPitch:  inst.VelPitch,
		VelFilter: inst.VelFilter,
		VelLevel:  inst.VelLevel,
	}}
	rec := &h.Payload
	for _, c := range headerLayout {
		copy(c.field(rec), c.want)
	}
	if inst.FilterType == FilterHiPass {
		rec.HiPass = 1
	}
	if inst.LoopOn {
		rec.LoopOn = 1
	}
	w.WriteUint32(uint32(h.Size()))
	w.WriteFrom(&h)
}

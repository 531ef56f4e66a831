// Package instrument decodes and encodes INST containers, the instrument
// files of a percussion sound module, and validates decoded instruments.
package instrument

import "slices"

// Instrument is one decoded or authored instrument file.
type Instrument struct {
	// Path identifies where the instrument came from. It is not part of the payload.
	Path string `json:"path"`

	Group      Group      `json:"group"`
	Level      uint8      `json:"level"`
	Pan        int8       `json:"pan"`
	Decay      uint8      `json:"decay"`
	CutOff     uint8      `json:"cut_off"`
	FilterType FilterType `json:"filter_type"`
	LoopOn     bool       `json:"loop_on"`
	Semi       int8       `json:"semi"`
	Fine       int8       `json:"fine"`
	VelDecay   int8       `json:"vel_decay"`
	VelFilter  int8       `json:"vel_filter"`
	VelPitch   int8       `json:"vel_pitch"`
	VelLevel   int8       `json:"vel_level"`
	CycleMode  CycleMode  `json:"cycle_mode"`

	// Opaque bytes of the mapping section prologue. Unknown1 has been seen as 0 and 11.
	Unknown0 uint8 `json:"unknown0"`
	Unknown1 uint8 `json:"unknown1"`

	// SampleMappings in playback priority order, which is also encoding order.
	SampleMappings []SampleMapping `json:"sample_mappings"`
}

// SampleMapping binds one sample file to a velocity and hihat-opening zone.
//
// The UnknownN fields are stored on the wire but their meaning is
// undocumented. They are carried verbatim; ObservedValues lists the values
// seen in device-authored files for the fields that have a closed set.
type SampleMapping struct {
	MinVelocity  uint8   `json:"min_velocity"`
	MaxVelocity  uint8   `json:"max_velocity"`
	HihatOpenMin uint8   `json:"hihat_open_min"`
	HihatOpenMax uint8   `json:"hihat_open_max"`
	SamplePath   string  `json:"sample_path"`
	Command      Command `json:"command"`

	Unknown2  uint8 `json:"unknown2"`
	Unknown3  uint8 `json:"unknown3"`
	Unknown4  int8  `json:"unknown4"` // mostly small positive, -2 seen
	Unknown5  uint8 `json:"unknown5"`
	Unknown6  int8  `json:"unknown6"` // -2..4 seen
	Unknown7  uint8 `json:"unknown7"`
	Unknown8  uint8 `json:"unknown8"`
	Unknown9  uint8 `json:"unknown9"`
	Unknown10 uint8 `json:"unknown10"`
	Unknown11 uint8 `json:"unknown11"`
	Unknown12 uint8 `json:"unknown12"`
	Unknown13 uint8 `json:"unknown13"`
}

// ObservedValues holds, per opaque mapping field, every value seen in
// device-authored files. Fields without an entry have taken arbitrary values.
var ObservedValues = map[string][]uint8{
	"unknown2":  {0x00, 0x3C},
	"unknown3":  {0x7F, 0x3C},
	"unknown7":  {6, 4, 5, 0, 3},
	"unknown8":  {0, 6, 4, 3},
	"unknown9":  {0x00, 0x78, 0x01, 0x64, 0x7E, 0x6E},
	"unknown12": {0x00, 0x3C},
	"unknown13": {0, 1, 3, 5, 7},
}

// NewSampleMapping returns a mapping for path over the given velocity range
// with the authoring defaults: command 0x63, Unknown3 0x7F, Unknown13 1,
// all other opaque fields zero and a fully open hihat range.
//
// These defaults are a contract: files synthesized from them are byte-stable
// across releases.
func NewSampleMapping(path string, minVelocity, maxVelocity uint8) SampleMapping {
	return SampleMapping{
		MinVelocity:  minVelocity,
		MaxVelocity:  maxVelocity,
		HihatOpenMin: 0,
		HihatOpenMax: 127,
		SamplePath:   path,
		Command:      DefaultCommand,
		Unknown3:     0x7F,
		Unknown13:    1,
	}
}

// Clone returns a deep copy of inst.
func (inst *Instrument) Clone() *Instrument {
	c := *inst
	c.SampleMappings = slices.Clone(inst.SampleMappings)
	return &c
}

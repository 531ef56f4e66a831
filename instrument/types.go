package instrument

import (
	"fmt"
	"slices"
)

// Group is the drum category of an instrument. The zero value GroupNone
// means the group is missing; on the wire a group is stored as its ordinal,
// which is one less than its Group value.
type Group int

const (
	GroupNone Group = iota
	GroupKick
	GroupSnare
	GroupTom
	GroupHH
	GroupCrash
	GroupRide
	GroupUnknown6
	GroupEKick
	GroupESnare
	GroupETom
	GroupChinaSplashes
	GroupPercEthnic
	GroupUnknown12
	GroupPercOrchestral
	GroupPercussion
	GroupUnknown15
	GroupUnknown16
	GroupUnknown17
	GroupClapsSFX
	GroupMelodic
)

var groupNames = [...]string{
	GroupKick:           "KICK",
	GroupSnare:          "SNARE",
	GroupTom:            "TOM",
	GroupHH:             "HH",
	GroupCrash:          "CRASH",
	GroupRide:           "RIDE",
	GroupUnknown6:       "UNKNOWN6",
	GroupEKick:          "E_KICK",
	GroupESnare:         "E_SNARE",
	GroupETom:           "E_TOM",
	GroupChinaSplashes:  "CHINA_SPLASHES",
	GroupPercEthnic:     "PERC_ETHNIC",
	GroupUnknown12:      "UNKNOWN12",
	GroupPercOrchestral: "PERC_ORCHESTRAL",
	GroupPercussion:     "PERCUSSION",
	GroupUnknown15:      "UNKNOWN15",
	GroupUnknown16:      "UNKNOWN16",
	GroupUnknown17:      "UNKNOWN17",
	GroupClapsSFX:       "CLAPS_SFX",
	GroupMelodic:        "MELODIC",
}

// GroupOf returns the group stored on the wire as ordinal.
func GroupOf(ordinal uint8) Group { return Group(ordinal) + 1 }

// Ordinal returns the wire value of g.
func (g Group) Ordinal() uint8 { return uint8(g - 1) }

// Valid reports whether g is one of the 20 known groups.
func (g Group) Valid() bool { return g > GroupNone && int(g) < len(groupNames) }

func (g Group) String() string {
	if g.Valid() {
		return groupNames[g]
	}
	if g == GroupNone {
		return ""
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

func (g Group) MarshalText() ([]byte, error) {
	if g != GroupNone && !g.Valid() {
		return nil, fmt.Errorf("instrument: cannot marshal unknown group %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Group) UnmarshalText(text []byte) error {
	return unmarshalName(groupNames[:], "group", text, (*int)(g))
}

// FilterType selects the filter applied by CutOff. The zero value means missing.
type FilterType int

const (
	FilterNone FilterType = iota
	FilterLoPass
	FilterHiPass
)

var filterNames = [...]string{FilterLoPass: "LOPASS", FilterHiPass: "HIPASS"}

func (f FilterType) Valid() bool { return f == FilterLoPass || f == FilterHiPass }

func (f FilterType) String() string {
	if f.Valid() || f == FilterNone {
		return filterNames[f]
	}
	return fmt.Sprintf("FilterType(%d)", int(f))
}

func (f FilterType) MarshalText() ([]byte, error) {
	if f != FilterNone && !f.Valid() {
		return nil, fmt.Errorf("instrument: cannot marshal unknown filter type %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *FilterType) UnmarshalText(text []byte) error {
	return unmarshalName(filterNames[:], "filter type", text, (*int)(f))
}

// CycleMode is the playback-variation policy among mappings sharing a zone.
// The zero value means missing.
type CycleMode int

const (
	CycleNone CycleMode = iota
	CycleRoundRobin
	CycleRandom
)

var cycleNames = [...]string{CycleRoundRobin: "ROUND_ROBIN", CycleRandom: "RANDOM"}

func (c CycleMode) Valid() bool { return c == CycleRoundRobin || c == CycleRandom }

func (c CycleMode) String() string {
	if c.Valid() || c == CycleNone {
		return cycleNames[c]
	}
	return fmt.Sprintf("CycleMode(%d)", int(c))
}

func (c CycleMode) MarshalText() ([]byte, error) {
	if c != CycleNone && !c.Valid() {
		return nil, fmt.Errorf("instrument: cannot marshal unknown cycle mode %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *CycleMode) UnmarshalText(text []byte) error {
	return unmarshalName(cycleNames[:], "cycle mode", text, (*int)(c))
}

// unmarshalName maps text to its index in names. Empty text is index 0, the missing value.
func unmarshalName(names []string, what string, text []byte, dest *int) error {
	if len(text) == 0 {
		*dest = 0
		return nil
	}
	i := slices.Index(names[1:], string(text))
	if i < 0 {
		return fmt.Errorf("instrument: unknown %s %q", what, text)
	}
	*dest = i + 1
	return nil
}

// Command is the byte code of a sample mapping.
type Command uint8

// DefaultCommand is the command given to newly authored mappings.
const DefaultCommand Command = 0x63

var commands = []Command{0x4D, 0x53, 0x54, 0x56, 0x57, 0x5A, 0x5C, 0x5D, 0x5E, 0x5F, 0x60, 0x61, 0x62, 0x63}

// Commands returns the allow-list of mapping commands.
func Commands() []Command { return slices.Clone(commands) }

// Valid reports whether c is on the allow-list.
func (c Command) Valid() bool { return slices.Contains(commands, c) }

func (c Command) String() string { return fmt.Sprintf("0x%02x", uint8(c)) }

package instrument

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

const maxPathLength = 32767

// Violation is one broken rule. Field is the JSON name of the offending
// field, indexed for mappings, e.g. "sampleMappings[2].maxVelocity".
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

type rule[T any] struct {
	field   string
	ok      func(*T) bool
	message string
}

func atLeast[T any, N constraints.Integer](field string, get func(*T) N, min N) rule[T] {
	return rule[T]{field, func(v *T) bool { return get(v) >= min }, fmt.Sprintf("must be greater than or equal to %d", min)}
}

func atMost[T any, N constraints.Integer](field string, get func(*T) N, max N) rule[T] {
	return rule[T]{field, func(v *T) bool { return get(v) <= max }, fmt.Sprintf("must be less than or equal to %d", max)}
}

func between[T any, N constraints.Integer](field string, get func(*T) N, min, max N) []rule[T] {
	return []rule[T]{atLeast(field, get, min), atMost(field, get, max)}
}

// observed restricts an opaque field to the values listed in ObservedValues.
func observed(field string, get func(*SampleMapping) uint8) rule[SampleMapping] {
	values := ObservedValues[field]
	return rule[SampleMapping]{field, func(m *SampleMapping) bool { return slices.Contains(values, get(m)) }, fmt.Sprintf("must be one of %v", values)}
}

// instrumentRules run in order; a field reports at most one message per rule.
var instrumentRules = slices.Concat(
	[]rule[Instrument]{
		{"path", func(i *Instrument) bool { return i.Path != "" }, "must not be empty"},
		{"path", func(i *Instrument) bool { return utf8.RuneCountInString(i.Path) <= maxPathLength }, fmt.Sprintf("size must be between 1 and %d", maxPathLength)},
		{"group", func(i *Instrument) bool { return i.Group != GroupNone }, "must not be null"},
		{"group", func(i *Instrument) bool { return i.Group == GroupNone || i.Group.Valid() }, "must be a known group"},
	},
	between("level", func(i *Instrument) uint8 { return i.Level }, 1, 99),
	between("pan", func(i *Instrument) int8 { return i.Pan }, -50, 50),
	between("decay", func(i *Instrument) uint8 { return i.Decay }, 1, 99),
	[]rule[Instrument]{
		atMost("cutOff", func(i *Instrument) uint8 { return i.CutOff }, 127),
		{"filterType", func(i *Instrument) bool { return i.FilterType != FilterNone }, "must not be null"},
		{"filterType", func(i *Instrument) bool { return i.FilterType == FilterNone || i.FilterType.Valid() }, "must be LOPASS or HIPASS"},
	},
	between("semi", func(i *Instrument) int8 { return i.Semi }, -12, 12),
	between("fine", func(i *Instrument) int8 { return i.Fine }, -50, 50),
	between("velDecay", func(i *Instrument) int8 { return i.VelDecay }, -99, 99),
	between("velFilter", func(i *Instrument) int8 { return i.VelFilter }, -99, 99),
	between("velPitch", func(i *Instrument) int8 { return i.VelPitch }, -99, 99),
	between("velLevel", func(i *Instrument) int8 { return i.VelLevel }, 0, 99),
	[]rule[Instrument]{
		{"cycleMode", func(i *Instrument) bool { return i.CycleMode != CycleNone }, "must not be null"},
		{"cycleMode", func(i *Instrument) bool { return i.CycleMode == CycleNone || i.CycleMode.Valid() }, "must be ROUND_ROBIN or RANDOM"},
		{"sampleMappings", func(i *Instrument) bool { return len(i.SampleMappings) > 0 }, "must not be empty"},
		{"sampleMappings", func(i *Instrument) bool { return len(i.SampleMappings) <= maxMappings }, fmt.Sprintf("size must be between 1 and %d", maxMappings)},
	},
)

var mappingRules = slices.Concat(
	between("minVelocity", func(m *SampleMapping) uint8 { return m.MinVelocity }, 1, 127),
	between("maxVelocity", func(m *SampleMapping) uint8 { return m.MaxVelocity }, 1, 127),
	[]rule[SampleMapping]{
		atMost("hihatOpenMin", func(m *SampleMapping) uint8 { return m.HihatOpenMin }, 127),
		atMost("hihatOpenMax", func(m *SampleMapping) uint8 { return m.HihatOpenMax }, 127),
		{"samplePath", func(m *SampleMapping) bool { return m.SamplePath != "" }, "must not be empty"},
		{"samplePath", func(m *SampleMapping) bool { return !strings.ContainsRune(m.SamplePath, 0) }, "must not contain NUL"},
		{"command", func(m *SampleMapping) bool { return m.Command.Valid() }, fmt.Sprintf("must be one of %v", commands)},
		observed("unknown2", func(m *SampleMapping) uint8 { return m.Unknown2 }),
		observed("unknown3", func(m *SampleMapping) uint8 { return m.Unknown3 }),
		observed("unknown7", func(m *SampleMapping) uint8 { return m.Unknown7 }),
		observed("unknown8", func(m *SampleMapping) uint8 { return m.Unknown8 }),
		observed("unknown9", func(m *SampleMapping) uint8 { return m.Unknown9 }),
		observed("unknown12", func(m *SampleMapping) uint8 { return m.Unknown12 }),
		observed("unknown13", func(m *SampleMapping) uint8 { return m.Unknown13 }),
	},
)

func apply[T any](rules []rule[T], prefix string, v *T, out []Violation) []Violation {
	for _, r := range rules {
		if !r.ok(v) {
			out = append(out, Violation{Field: prefix + r.field, Message: r.message})
		}
	}
	return out
}

// Validate returns every rule inst breaks, in a stable order. A valid
// instrument yields nil. Validate holds no state and is safe for concurrent use.
func Validate(inst *Instrument) []Violation {
	if inst == nil {
		return []Violation{{Field: "instrument", Message: "must not be null"}}
	}
	violations := apply(instrumentRules, "", inst, nil)
	for i := range inst.SampleMappings {
		prefix := fmt.Sprintf("sampleMappings[%d].", i)
		violations = apply(mappingRules, prefix, &inst.SampleMappings[i], violations)
	}
	return violations
}

// Check is Validate as an error: nil, or an *InvalidInstrumentError.
func Check(inst *Instrument) error {
	if inst == nil {
		return ErrNilInstrument
	}
	if violations := Validate(inst); len(violations) > 0 {
		return &InvalidInstrumentError{Violations: violations}
	}
	return nil
}

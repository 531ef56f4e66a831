package instrument

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Field
	}
	return out
}

func TestValidateEmptyInstrument(t *testing.T) {
	violations := Validate(&Instrument{})
	require.Len(t, violations, 7)
	assert.Equal(t, []Violation{
		{Field: "path", Message: "must not be empty"},
		{Field: "group", Message: "must not be null"},
		{Field: "level", Message: "must be greater than or equal to 1"},
		{Field: "decay", Message: "must be greater than or equal to 1"},
		{Field: "filterType", Message: "must not be null"},
		{Field: "cycleMode", Message: "must not be null"},
		{Field: "sampleMappings", Message: "must not be empty"},
	}, violations)

	err := Check(&Instrument{})
	var invalid *InvalidInstrumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, violations, invalid.Violations)
	assert.Contains(t, err.Error(), "group: must not be null; level: must be greater than or equal to 1")
}

func TestValidateValid(t *testing.T) {
	assert.Empty(t, Validate(kick()))
	assert.Empty(t, Validate(hihat()))
	assert.NoError(t, Check(kick()))
}

func TestValidateNil(t *testing.T) {
	assert.Len(t, Validate(nil), 1)
	assert.ErrorIs(t, Check(nil), ErrNilInstrument)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Instrument)
		field  string
	}{
		{"LevelTooHigh", func(i *Instrument) { i.Level = 100 }, "level"},
		{"PanTooHigh", func(i *Instrument) { i.Pan = 51 }, "pan"},
		{"DecayTooHigh", func(i *Instrument) { i.Decay = 100 }, "decay"},
		{"CutOffTooHigh", func(i *Instrument) { i.CutOff = 128 }, "cutOff"},
		{"SemiTooLow", func(i *Instrument) { i.Semi = -13 }, "semi"},
		{"FineTooHigh", func(i *Instrument) { i.Fine = 51 }, "fine"},
		{"VelDecayTooLow", func(i *Instrument) { i.VelDecay = -100 }, "velDecay"},
		{"VelFilterTooHigh", func(i *Instrument) { i.VelFilter = 100 }, "velFilter"},
		{"VelPitchTooLow", func(i *Instrument) { i.VelPitch = -100 }, "velPitch"},
		{"VelLevelNegative", func(i *Instrument) { i.VelLevel = -1 }, "velLevel"},
		{"UnknownGroup", func(i *Instrument) { i.Group = GroupMelodic + 1 }, "group"},
		{"UnknownFilter", func(i *Instrument) { i.FilterType = 7 }, "filterType"},
		{"UnknownCycle", func(i *Instrument) { i.CycleMode = 7 }, "cycleMode"},
		{"PathTooLong", func(i *Instrument) { i.Path = string(make([]rune, maxPathLength+1)) }, "path"},
		{"TooManyMappings", func(i *Instrument) {
			i.SampleMappings = make([]SampleMapping, maxMappings+1)
			for j := range i.SampleMappings {
				i.SampleMappings[j] = NewSampleMapping("kick.wav", 1, 127)
			}
		}, "sampleMappings"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := kick()
			tc.mutate(inst)
			assert.Equal(t, []string{tc.field}, fields(Validate(inst)))
		})
	}
}

func TestValidateMappings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SampleMapping)
		fields []string
	}{
		{"ZeroVelocity", func(m *SampleMapping) { m.MinVelocity = 0 }, []string{"minVelocity"}},
		{"VelocityTooHigh", func(m *SampleMapping) { m.MaxVelocity = 128 }, []string{"maxVelocity"}},
		{"InvertedVelocityAccepted", func(m *SampleMapping) { m.MinVelocity, m.MaxVelocity = 100, 10 }, nil},
		{"HihatTooHigh", func(m *SampleMapping) { m.HihatOpenMax = 200 }, []string{"hihatOpenMax"}},
		{"EmptyPath", func(m *SampleMapping) { m.SamplePath = "" }, []string{"samplePath"}},
		{"NulInPath", func(m *SampleMapping) { m.SamplePath = "a\x00b" }, []string{"samplePath"}},
		{"UnknownCommand", func(m *SampleMapping) { m.Command = 0x00 }, []string{"command"}},
		{"UnobservedOpaque", func(m *SampleMapping) { m.Unknown2, m.Unknown13 = 1, 2 }, []string{"unknown2", "unknown13"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := hihat()
			tc.mutate(&inst.SampleMappings[1])
			want := make([]string, len(tc.fields))
			for i, f := range tc.fields {
				want[i] = "sampleMappings[1]." + f
			}
			assert.Equal(t, want, fields(Validate(inst)))
		})
	}
}

func TestValidateFreeOpaqueFields(t *testing.T) {
	inst := kick()
	m := &inst.SampleMappings[0]
	m.Unknown4, m.Unknown5, m.Unknown6, m.Unknown10, m.Unknown11 = -128, 255, 127, 1, 2
	assert.Empty(t, Validate(inst))
}

func TestValidateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, Validate(&Instrument{}), 7)
		}()
	}
	wg.Wait()
}

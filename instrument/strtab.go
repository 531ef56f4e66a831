package instrument

import (
	"math"

	"github.com/oy3o/strike"
)

const (
	tagStrings = "str "
	maxStrings = math.MaxUint16 + 1
)

// stringTable collects sample paths in slot order while mappings are encoded.
type stringTable struct {
	entries []string
	slots   map[string]uint16 // non-nil when equal paths share a slot
}

func newStringTable(intern bool) *stringTable {
	t := &stringTable{}
	if intern {
		t.slots = make(map[string]uint16)
	}
	return t
}

// add returns the slot holding s, appending s when it has none yet.
func (t *stringTable) add(s string) (uint16, error) {
	if slot, ok := t.slots[s]; ok {
		return slot, nil
	}
	if len(t.entries) >= maxStrings {
		return 0, &CountOverflowError{What: "string table entries", Count: len(t.entries) + 1, Max: maxStrings}
	}
	slot := uint16(len(t.entries))
	t.entries = append(t.entries, s)
	if t.slots != nil {
		t.slots[s] = slot
	}
	return slot, nil
}

// decodeStrings reads the "str " section. The table ends where the section
// does or at the first empty string, whichever comes first.
func decodeStrings(r *strike.Reader) ([]string, error) {
	sec := r.Section(tagStrings)
	var table []string
	for {
		s := sec.ReadCString()
		if err := sec.Err(); err != nil {
			return nil, err
		}
		if s == "" {
			return table, nil
		}
		table = append(table, s)
	}
}

// encodeStrings writes the "str " section holding entries in slot order.
func encodeStrings(w *strike.Writer, entries []string) {
	w.WriteSection(tagStrings, func(p *strike.Writer) {
		for _, s := range entries {
			p.WriteCString(s)
		}
	})
}

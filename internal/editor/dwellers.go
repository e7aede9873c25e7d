package editor

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	"vaultedit/internal/document"
	"vaultedit/internal/schema"
)

// DwellerEdits carries pending edits for one dweller. Nil pointer fields are
// "not edited". Special maps stat index (1..7) to the new value.
type DwellerEdits struct {
	Level     *float64
	Happiness *float64
	Health    *float64
	Special   map[int]int
}

// Dwellers returns the dweller records in document order, or nil when the
// dweller list is absent. Non-object entries are skipped.
func (s *Session) Dwellers() []*document.Node {
	list, err := s.doc.Get(schema.DwellersPath)
	if err != nil || list.Kind() != document.Array {
		return nil
	}
	var out []*document.Node
	for _, el := range list.Elems() {
		if el.Kind() == document.Object {
			out = append(out, el)
		}
	}
	return out
}

// ApplyDwellerEdits writes the pending edits onto one dweller record.
//
// Level, happiness and health accept any finite number and are written
// unclamped; the nominal ranges (1-50, 0-100) are deliberately not enforced
// here. SPECIAL edits are accepted only for stat indexes 1..7 with integer
// values in [1,10]; each out-of-range stat is skipped on its own while the
// rest of the call still applies.
func (s *Session) ApplyDwellerEdits(dweller *document.Node, edits DwellerEdits) int {
	if dweller == nil || dweller.Kind() != document.Object {
		return 0
	}
	applied := 0

	setNumber := func(path string, v *float64) {
		if v == nil {
			return
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			s.log.Debug("dweller edit skipped: not finite", zap.String("path", path))
			return
		}
		if err := dweller.Set(path, document.NewFloat(*v)); err == nil {
			applied++
		}
	}
	setNumber(schema.DwellerLevelPath, edits.Level)
	setNumber(schema.DwellerHappinessPath, edits.Happiness)
	setNumber(schema.DwellerHealthPath, edits.Health)

	for stat, value := range edits.Special {
		if stat < 1 || stat > len(schema.SpecialNames) {
			s.log.Debug("special edit skipped: bad stat index", zap.Int("stat", stat))
			continue
		}
		if value < schema.SpecialMin || value > schema.SpecialMax {
			s.log.Debug("special edit skipped: out of range",
				zap.Int("stat", stat), zap.Int("value", value))
			continue
		}
		path := schema.DwellerStatsPath + "." + strconv.Itoa(stat)
		if err := dweller.Set(path, document.NewInt(int64(value))); err == nil {
			applied++
		}
	}

	s.markApplied(applied)
	return applied
}

// MaxDwellerSpecial forces all seven SPECIAL stats to the maximum, then
// applies any other pending edits from the same call. SPECIAL values inside
// edits are superseded by the maximum and ignored.
func (s *Session) MaxDwellerSpecial(dweller *document.Node, edits DwellerEdits) int {
	if dweller == nil || dweller.Kind() != document.Object {
		return 0
	}
	applied := 0
	for stat := 1; stat <= len(schema.SpecialNames); stat++ {
		path := schema.DwellerStatsPath + "." + strconv.Itoa(stat)
		if err := dweller.Set(path, document.NewInt(schema.SpecialMax)); err == nil {
			applied++
		}
	}
	s.markApplied(applied)

	edits.Special = nil
	return applied + s.ApplyDwellerEdits(dweller, edits)
}

// MaxAllDwellers force-maxes every dweller: level 50, the matching
// experience total, full happiness and health, and all SPECIAL stats at 10.
// This is a direct overwrite that bypasses per-field validation. Returns the
// number of dwellers processed; 0 when the list is absent or empty.
func (s *Session) MaxAllDwellers() int {
	dwellers := s.Dwellers()
	for _, d := range dwellers {
		_ = d.Set(schema.DwellerLevelPath, document.NewInt(schema.MaxDwellerLevel))
		_ = d.Set(schema.DwellerExperiencePath, document.NewInt(schema.MaxLevelExperience))
		_ = d.Set(schema.DwellerHappinessPath, document.NewInt(schema.MaxHappiness))
		_ = d.Set(schema.DwellerHealthPath, document.NewInt(schema.MaxHealth))
		for stat := 1; stat <= len(schema.SpecialNames); stat++ {
			_ = d.Set(schema.DwellerStatsPath+"."+strconv.Itoa(stat), document.NewInt(schema.SpecialMax))
		}
	}
	s.markApplied(len(dwellers))
	s.log.Info("maxed all dwellers", zap.Int("count", len(dwellers)))
	return len(dwellers)
}

// DwellerView is a read-only snapshot of the fields the editor displays.
type DwellerView struct {
	Name      string
	Level     int64
	Happiness float64
	Health    float64
	Gender    string
	Pregnant  bool
	Special   [7]int64
}

// ViewDweller reads the display fields out of one dweller record. Missing
// fields are left at their zero values.
func (s *Session) ViewDweller(dweller *document.Node) DwellerView {
	var v DwellerView
	if node, err := dweller.Get(schema.DwellerNamePath); err == nil {
		v.Name, _ = node.StringVal()
	}
	if node, err := dweller.Get(schema.DwellerLevelPath); err == nil {
		v.Level, _ = node.Int()
	}
	if node, err := dweller.Get(schema.DwellerHappinessPath); err == nil {
		v.Happiness, _ = node.Float()
	}
	if node, err := dweller.Get(schema.DwellerHealthPath); err == nil {
		v.Health, _ = node.Float()
	}
	if node, err := dweller.Get(schema.DwellerGenderPath); err == nil {
		if code, ok := node.Int(); ok {
			switch code {
			case schema.GenderFemale:
				v.Gender = "Female"
			case schema.GenderMale:
				v.Gender = "Male"
			}
		}
	}
	if node, err := dweller.Get(schema.DwellerPregnantPath); err == nil {
		v.Pregnant, _ = node.BoolVal()
	}
	for stat := 1; stat <= len(schema.SpecialNames); stat++ {
		if node, err := dweller.Get(schema.DwellerStatsPath + "." + strconv.Itoa(stat)); err == nil {
			v.Special[stat-1], _ = node.Int()
		}
	}
	return v
}

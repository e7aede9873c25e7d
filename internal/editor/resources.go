package editor

import (
	"math"

	"go.uber.org/zap"

	"vaultedit/internal/document"
	"vaultedit/internal/schema"
)

// ApplyResourceEdits writes each edit whose value is a finite number >= 0 to
// the raw key behind the logical name. Unknown names and invalid values are
// skipped silently; only the applied count is reported.
func (s *Session) ApplyResourceEdits(edits map[string]float64) int {
	// A save without a resources section degrades to a no-op rather than
	// inventing one the game never wrote.
	if res, err := s.doc.Get(schema.ResourcesPath); err != nil || res.Kind() != document.Object {
		s.log.Debug("resource edits skipped: no resources section")
		return 0
	}

	applied := 0
	for logical, value := range edits {
		res, ok := schema.LookupResource(logical)
		if !ok {
			s.log.Debug("resource edit skipped: unknown name", zap.String("name", logical))
			continue
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			s.log.Debug("resource edit skipped: invalid value",
				zap.String("name", logical), zap.Float64("value", value))
			continue
		}
		if err := s.doc.Set(schema.ResourcesPath+"."+res.RawKey, document.NewFloat(value)); err != nil {
			continue
		}
		applied++
	}
	s.markApplied(applied)
	s.log.Info("resource edits applied", zap.Int("applied", applied), zap.Int("requested", len(edits)))
	return applied
}

// MaxAllResources sets every known resource to its ceiling from the schema
// table, through the same validation path as any other resource edit.
func (s *Session) MaxAllResources() int {
	edits := make(map[string]float64)
	for _, r := range schema.Resources() {
		edits[r.Logical] = r.Ceiling
	}
	return s.ApplyResourceEdits(edits)
}

// Resource returns the current amount behind a logical resource name. The
// bool is false when the name is unknown, the resources section is missing,
// or the stored value is not numeric.
func (s *Session) Resource(logical string) (float64, bool) {
	res, ok := schema.LookupResource(logical)
	if !ok {
		return 0, false
	}
	node, err := s.doc.Get(schema.ResourcesPath + "." + res.RawKey)
	if err != nil {
		return 0, false
	}
	return node.Float()
}

// Package schema is the single source of truth for how logical field names
// map onto the raw save format: resource keys, vault metadata paths, and
// dweller attribute paths. Supporting a new resource means adding one row to
// the resource table.
package schema

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Resource is one row of the canonical resource table. Ceiling is the value
// "max all resources" writes for it.
type Resource struct {
	Logical string // name exposed to callers and on the CLI
	RawKey  string // key inside vault.storage.resources
	Ceiling float64
}

// The raw keys predate the editor; caps are stored as "Nuka" and power as
// "Energy".
var resources = []Resource{
	{Logical: "caps", RawKey: "Nuka", Ceiling: 999999},
	{Logical: "food", RawKey: "Food", Ceiling: 999999},
	{Logical: "water", RawKey: "Water", Ceiling: 999999},
	{Logical: "power", RawKey: "Energy", Ceiling: 999999},
	{Logical: "stimpaks", RawKey: "StimPack", Ceiling: 999999},
	{Logical: "radaway", RawKey: "RadAway", Ceiling: 999999},
	{Logical: "quantum", RawKey: "NukaColaQuantum", Ceiling: 999},
	{Logical: "lunchbox", RawKey: "Lunchbox", Ceiling: 999},
	{Logical: "petCarrier", RawKey: "PetCarrier", Ceiling: 999},
	{Logical: "robotCompanion", RawKey: "MrHandy", Ceiling: 99},
}

// ResourcesPath is where the resource table lives in the document.
const ResourcesPath = "vault.storage.resources"

// Vault metadata paths.
const (
	VaultNamePath  = "vault.VaultName"
	VaultModePath  = "vault.VaultMode"
	VaultThemePath = "vault.VaultTheme"
)

// DwellersPath addresses the dweller list.
const DwellersPath = "dwellers.dwellers"

// Paths within one dweller record.
const (
	DwellerLevelPath      = "experience.currentLevel"
	DwellerExperiencePath = "experience.experienceValue"
	DwellerHappinessPath  = "happiness.happinessValue"
	DwellerHealthPath     = "health.healthValue"
	DwellerGenderPath     = "gender"
	DwellerPregnantPath   = "relations.pregnant"
	DwellerNamePath       = "name"
	DwellerStatsPath      = "serializeableSpecialStats.stats"
)

// Vault modes accepted by the game.
const (
	ModeNormal   = "Normal"
	ModeSurvival = "Survival"
)

// Gender codes used by the raw format.
const (
	GenderFemale = 1
	GenderMale   = 2
)

// SPECIAL stats are keyed "1".."7" in the raw format, in this order.
var SpecialNames = [7]string{
	"Strength", "Perception", "Endurance", "Charisma",
	"Intelligence", "Agility", "Luck",
}

// SPECIAL bounds.
const (
	SpecialMin = 1
	SpecialMax = 10
)

// MaxDwellerLevel and MaxLevelExperience are the level-50 constants the
// max-all operation writes.
const (
	MaxDwellerLevel    = 50
	MaxLevelExperience = 2916000
	MaxHappiness       = 100
	MaxHealth          = 100
)

// LookupResource resolves a logical resource name to its table row.
func LookupResource(logical string) (Resource, bool) {
	for _, r := range resources {
		if r.Logical == logical {
			return r, true
		}
	}
	return Resource{}, false
}

// Resources returns the full table in canonical order.
func Resources() []Resource {
	return append([]Resource(nil), resources...)
}

// ResourceNames returns the logical names sorted alphabetically, for help
// text and error messages.
func ResourceNames() []string {
	names := make([]string, 0, len(resources))
	for _, r := range resources {
		names = append(names, r.Logical)
	}
	sort.Strings(names)
	return names
}

// SuggestResource returns the closest logical name for a misspelled input,
// if one is close enough to be a plausible typo.
func SuggestResource(input string) (string, bool) {
	best, bestDist := "", -1
	for _, r := range resources {
		d := levenshtein.ComputeDistance(input, r.Logical)
		if bestDist < 0 || d < bestDist {
			best, bestDist = r.Logical, d
		}
	}
	// Allow roughly one typo per four characters.
	limit := 1 + len(input)/4
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

package editor

import (
	"testing"

	"vaultedit/internal/codec"
	"vaultedit/internal/document"
)

const sampleSave = `{"vault":{"VaultName":"Sandy Flats","VaultMode":"Normal","VaultTheme":0,` +
	`"storage":{"resources":{"Nuka":500.5,"Food":100,"Water":80,"Energy":70,` +
	`"StimPack":5,"RadAway":3,"NukaColaQuantum":2,"Lunchbox":1,"MrHandy":0,"PetCarrier":0}}},` +
	`"dwellers":{"dwellers":[` +
	`{"name":"Abigail","gender":1,"experience":{"currentLevel":3,"experienceValue":120},` +
	`"happiness":{"happinessValue":75},"health":{"healthValue":90},` +
	`"relations":{"pregnant":false},` +
	`"serializeableSpecialStats":{"stats":{"1":2,"2":3,"3":4,"4":5,"5":6,"6":7,"7":1}}},` +
	`{"name":"Burt","gender":2,"experience":{"currentLevel":10,"experienceValue":9000},` +
	`"happiness":{"happinessValue":50},"health":{"healthValue":100},` +
	`"relations":{"pregnant":false},` +
	`"serializeableSpecialStats":{"stats":{"1":10,"2":1,"3":1,"4":1,"5":1,"6":1,"7":1}}}]}}`

func openSample(t *testing.T) *Session {
	t.Helper()
	doc, err := document.Parse(sampleSave)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	return FromDocument(doc)
}

func floatPtr(v float64) *float64 { return &v }

func TestOpenEncodeRoundTrip(t *testing.T) {
	cipher := codec.Encrypt(`{"a":1}`)
	s, err := Open(cipher)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	node, err := s.Document().Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v, ok := node.Int(); !ok || v != 1 {
		t.Errorf("a = %v, want 1", node)
	}

	out, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if string(out) != string(cipher) {
		t.Errorf("re-encoding an unmodified document must be byte-identical")
	}
}

func TestOpenRejectsBadCiphertext(t *testing.T) {
	if _, err := Open([]byte("!!!not base64!!!")); err == nil {
		t.Error("Open should fail on invalid base64")
	}
	// Decrypts fine but is not JSON.
	if _, err := Open(codec.Encrypt("plain text, no json")); err == nil {
		t.Error("Open should fail on unparseable plaintext")
	}
}

func TestApplyResourceEdits(t *testing.T) {
	s := openSample(t)

	applied := s.ApplyResourceEdits(map[string]float64{"caps": 1234, "food": 42})
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}
	if v, ok := s.Resource("caps"); !ok || v != 1234 {
		t.Errorf("caps = %v (ok=%v), want 1234", v, ok)
	}
	if !s.Dirty() {
		t.Error("session should be dirty after an applied edit")
	}
}

func TestApplyResourceEditsRejectsNegative(t *testing.T) {
	s := openSample(t)

	applied := s.ApplyResourceEdits(map[string]float64{"caps": -5})
	if applied != 0 {
		t.Fatalf("applied = %d, want 0", applied)
	}
	if v, _ := s.Resource("caps"); v != 500.5 {
		t.Errorf("caps changed to %v, want untouched 500.5", v)
	}
	if s.Dirty() {
		t.Error("nothing applied, session must stay clean")
	}
}

func TestApplyResourceEditsSkipsUnknownNames(t *testing.T) {
	s := openSample(t)
	if applied := s.ApplyResourceEdits(map[string]float64{"bottlecaps": 10}); applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
}

func TestApplyResourceEditsNoResourceSection(t *testing.T) {
	doc, err := document.Parse(`{"vault":{"VaultName":"Empty"}}`)
	if err != nil {
		t.Fatal(err)
	}
	s := FromDocument(doc)
	if applied := s.ApplyResourceEdits(map[string]float64{"caps": 10}); applied != 0 {
		t.Errorf("applied = %d, want 0 when resources section is missing", applied)
	}
	// The no-op must not have invented the section.
	if _, err := s.Document().Get("vault.storage.resources"); err == nil {
		t.Error("resources section must not be created by a degraded edit")
	}
}

func TestMaxAllResources(t *testing.T) {
	s := openSample(t)
	applied := s.MaxAllResources()
	if applied != 10 {
		t.Fatalf("applied = %d, want 10", applied)
	}
	checks := map[string]float64{
		"caps":           999999,
		"quantum":        999,
		"robotCompanion": 99,
	}
	for logical, want := range checks {
		if v, ok := s.Resource(logical); !ok || v != want {
			t.Errorf("%s = %v (ok=%v), want %v", logical, v, ok, want)
		}
	}
}

func TestApplyVaultEdits(t *testing.T) {
	s := openSample(t)

	applied := s.ApplyVaultEdits(VaultEdits{Name: "  New Home  ", Mode: "Survival", Theme: "4"})
	if applied != 3 {
		t.Fatalf("applied = %d, want 3", applied)
	}
	if name, _ := s.VaultName(); name != "New Home" {
		t.Errorf("name = %q, want trimmed \"New Home\"", name)
	}
	if mode, _ := s.VaultMode(); mode != "Survival" {
		t.Errorf("mode = %q", mode)
	}
	if theme, _ := s.VaultTheme(); theme != 4 {
		t.Errorf("theme = %d", theme)
	}
}

func TestApplyVaultEditsValidation(t *testing.T) {
	s := openSample(t)

	cases := []struct {
		edits VaultEdits
		want  int
	}{
		{VaultEdits{Name: "   "}, 0},            // blank after trim
		{VaultEdits{Mode: "Hardcore"}, 0},       // unknown mode
		{VaultEdits{Theme: "-3"}, 0},            // negative theme
		{VaultEdits{Theme: "classic"}, 0},       // not an integer
		{VaultEdits{Name: "Ok", Mode: "x"}, 1},  // partial apply
	}
	for _, c := range cases {
		if got := s.ApplyVaultEdits(c.edits); got != c.want {
			t.Errorf("ApplyVaultEdits(%+v) = %d, want %d", c.edits, got, c.want)
		}
	}
	if mode, _ := s.VaultMode(); mode != "Normal" {
		t.Errorf("mode changed to %q, want untouched Normal", mode)
	}
}

func TestApplyDwellerEditsUnclamped(t *testing.T) {
	s := openSample(t)
	d := s.Dwellers()[0]

	// Level beyond the nominal 1-50 range still applies: basic stats are
	// validated as numbers, not as ranges.
	applied := s.ApplyDwellerEdits(d, DwellerEdits{
		Level:     floatPtr(9999),
		Happiness: floatPtr(150),
		Health:    floatPtr(-20),
	})
	if applied != 3 {
		t.Fatalf("applied = %d, want 3", applied)
	}
	v := s.ViewDweller(d)
	if v.Level != 9999 || v.Happiness != 150 || v.Health != -20 {
		t.Errorf("unclamped write lost: %+v", v)
	}
}

func TestApplyDwellerEditsSpecialRange(t *testing.T) {
	s := openSample(t)
	d := s.Dwellers()[0]

	applied := s.ApplyDwellerEdits(d, DwellerEdits{
		Special: map[int]int{1: 10, 2: 11, 3: 0, 4: 7, 9: 5},
	})
	// Stats 1 and 4 apply; 2 and 3 are out of range, 9 is not a stat.
	if applied != 2 {
		t.Fatalf("applied = %d, want 2", applied)
	}
	v := s.ViewDweller(d)
	if v.Special[0] != 10 || v.Special[3] != 7 {
		t.Errorf("in-range stats not applied: %v", v.Special)
	}
	if v.Special[1] != 3 || v.Special[2] != 4 {
		t.Errorf("out-of-range stats must stay untouched: %v", v.Special)
	}
}

func TestMaxDwellerSpecial(t *testing.T) {
	s := openSample(t)
	d := s.Dwellers()[0]

	applied := s.MaxDwellerSpecial(d, DwellerEdits{Happiness: floatPtr(88)})
	if applied != 8 {
		t.Fatalf("applied = %d, want 7 stats + 1 happiness", applied)
	}
	v := s.ViewDweller(d)
	for i, stat := range v.Special {
		if stat != 10 {
			t.Errorf("stat %d = %d, want 10", i+1, stat)
		}
	}
	if v.Happiness != 88 {
		t.Errorf("happiness = %v, want 88", v.Happiness)
	}
}

func TestMaxDwellerSpecialCreatesStatsObject(t *testing.T) {
	doc, err := document.Parse(`{"dwellers":{"dwellers":[{"name":"Stub"}]}}`)
	if err != nil {
		t.Fatal(err)
	}
	s := FromDocument(doc)
	d := s.Dwellers()[0]

	if applied := s.MaxDwellerSpecial(d, DwellerEdits{}); applied != 7 {
		t.Fatalf("applied = %d, want 7", applied)
	}
	v := s.ViewDweller(d)
	for i, stat := range v.Special {
		if stat != 10 {
			t.Errorf("stat %d = %d, want 10", i+1, stat)
		}
	}
}

func TestMaxAllDwellers(t *testing.T) {
	s := openSample(t)

	if n := s.MaxAllDwellers(); n != 2 {
		t.Fatalf("processed = %d, want 2", n)
	}
	for i, d := range s.Dwellers() {
		v := s.ViewDweller(d)
		if v.Level != 50 || v.Happiness != 100 || v.Health != 100 {
			t.Errorf("dweller %d not maxed: %+v", i, v)
		}
		for j, stat := range v.Special {
			if stat != 10 {
				t.Errorf("dweller %d stat %d = %d", i, j+1, stat)
			}
		}
		exp, err := d.Get("experience.experienceValue")
		if err != nil {
			t.Fatalf("dweller %d experience missing", i)
		}
		if xp, _ := exp.Int(); xp != 2916000 {
			t.Errorf("dweller %d experience = %d, want 2916000", i, xp)
		}
	}
}

func TestMaxAllDwellersNoList(t *testing.T) {
	doc, err := document.Parse(`{"vault":{"VaultName":"Quiet"}}`)
	if err != nil {
		t.Fatal(err)
	}
	s := FromDocument(doc)
	if n := s.MaxAllDwellers(); n != 0 {
		t.Errorf("processed = %d, want 0 when dweller list is absent", n)
	}
	if s.Dirty() {
		t.Error("no-op must not dirty the session")
	}
}

func TestViewDweller(t *testing.T) {
	s := openSample(t)
	v := s.ViewDweller(s.Dwellers()[0])
	if v.Name != "Abigail" || v.Gender != "Female" || v.Pregnant {
		t.Errorf("unexpected view: %+v", v)
	}
	if v.Level != 3 || v.Happiness != 75 || v.Health != 90 {
		t.Errorf("unexpected view numbers: %+v", v)
	}
	if v.Special != [7]int64{2, 3, 4, 5, 6, 7, 1} {
		t.Errorf("unexpected SPECIAL: %v", v.Special)
	}

	m := s.ViewDweller(s.Dwellers()[1])
	if m.Gender != "Male" {
		t.Errorf("gender code 2 should read as Male, got %q", m.Gender)
	}
}

func TestFullPipeline(t *testing.T) {
	// ciphertext -> decrypt -> parse -> edit -> serialize -> encrypt -> reopen
	cipher := codec.Encrypt(sampleSave)
	s, err := Open(cipher)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	s.MaxAllResources()
	s.ApplyVaultEdits(VaultEdits{Name: "Round Trip"})

	out, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	reopened, err := Open(out)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if v, _ := reopened.Resource("caps"); v != 999999 {
		t.Errorf("caps = %v after round trip", v)
	}
	if name, _ := reopened.VaultName(); name != "Round Trip" {
		t.Errorf("name = %q after round trip", name)
	}
	// Untouched dweller data must survive byte-for-byte semantics.
	if v := reopened.ViewDweller(reopened.Dwellers()[1]); v.Name != "Burt" || v.Level != 10 {
		t.Errorf("unrelated data disturbed: %+v", v)
	}
}

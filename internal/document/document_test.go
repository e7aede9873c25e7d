package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSerializePreservesKeyOrder(t *testing.T) {
	in := `{"zeta":1,"alpha":{"b":2,"a":3},"list":[1,"two",false,null],"name":"vault"}`
	tree, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := Serialize(tree)
	if out != in {
		t.Errorf("serialize changed the text:\n got %s\nwant %s", out, in)
	}
}

func TestParsePreservesNumberText(t *testing.T) {
	in := `{"a":1.50,"b":1e6,"c":-0.25,"d":2916000}`
	tree, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Serialize(tree); got != in {
		t.Errorf("number formatting not preserved:\n got %s\nwant %s", got, in)
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":}`, `{"a":1} trailing`, `[1,2`, `nope`} {
		if _, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): expected ErrParse, got %v", in, err)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	tree := NewObject()
	if err := tree.Set("a.b.c", NewInt(5)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := tree.Get("a.b.c")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v, ok := got.Int(); !ok || v != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestSetReplacesScalarIntermediate(t *testing.T) {
	tree, err := Parse(`{"a":"scalar"}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := tree.Set("a.b", NewBool(true)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := tree.Get("a.b")
	if err != nil {
		t.Fatalf("Get after Set failed: %v", err)
	}
	if v, ok := got.BoolVal(); !ok || !v {
		t.Errorf("got %v, want true", got)
	}
}

func TestSetKeepsSiblingOrder(t *testing.T) {
	tree, err := Parse(`{"first":1,"second":2,"third":3}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := tree.Set("second", NewInt(22)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := tree.Set("fourth", NewInt(4)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	want := []string{"first", "second", "third", "fourth"}
	if diff := cmp.Diff(want, tree.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if got := Serialize(tree); got != `{"first":1,"second":22,"third":3,"fourth":4}` {
		t.Errorf("unexpected serialization: %s", got)
	}
}

func TestGetMissingPath(t *testing.T) {
	tree, err := Parse(`{"vault":{"storage":{}}}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := tree.Get("vault.storage.resources"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := tree.Get("vault.storage.resources.Nuka.deeper"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetRejectsEmptySegments(t *testing.T) {
	tree := NewObject()
	for _, path := range []string{"", "a..b", ".a", "a."} {
		if err := tree.Set(path, NewInt(1)); err == nil {
			t.Errorf("Set(%q) should reject the path", path)
		}
	}
}

func TestNumericObjectKeys(t *testing.T) {
	// SPECIAL stats are an object keyed "1".."7"; numeric-looking segments
	// must address object keys, never array indexes.
	tree := NewObject()
	if err := tree.Set("stats.3", NewInt(10)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	stats, err := tree.Get("stats")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stats.Kind() != Object {
		t.Fatalf("stats is %s, want object", stats.Kind())
	}
	if got := Serialize(tree); got != `{"stats":{"3":10}}` {
		t.Errorf("unexpected serialization: %s", got)
	}
}

func TestFloatNodeRendering(t *testing.T) {
	tree := NewObject()
	tree.SetField("whole", NewFloat(100))
	tree.SetField("frac", NewFloat(99.5))
	if got := Serialize(tree); got != `{"whole":100,"frac":99.5}` {
		t.Errorf("unexpected serialization: %s", got)
	}
}

func TestStringEscaping(t *testing.T) {
	tree := NewObject()
	tree.SetField("name", NewString(`Vault "13" <&> \ tab	end`))
	out := Serialize(tree)
	back, err := Parse(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	got, err := back.Get("name")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s, _ := got.StringVal(); s != `Vault "13" <&> \ tab	end` {
		t.Errorf("escaping round trip broke: %q", s)
	}
}

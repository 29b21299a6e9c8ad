package restrict

import (
	"strings"
	"testing"
)

func TestRestrictionsEmpty(t *testing.T) {
	o := Options{EPD: "x", Depth: 5, Verbose: 2, OutFile: "out.epd"}
	if !o.RestrictionsEmpty() {
		t.Error("options without restrictions reported non-empty")
	}
	o.ExcludeToAttacked = true
	if o.RestrictionsEmpty() {
		t.Error("options with a restriction reported empty")
	}
}

func TestOptionsString(t *testing.T) {
	o := Options{
		EPD:             "k7/8/1K6/8/8/8/8/7R w - - bm #1;",
		Depth:           10,
		OpeningMoves:    "e2e4 e7e5, d2d4",
		ExcludeMoves:    "h1h2",
		ExcludeCaptures: true,
	}
	s := o.String()
	for _, want := range []string{
		`--epd "k7/8/1K6/8/8/8/8/7R w - - bm #1;"`,
		"--depth 10",
		`--openingMoves "e2e4 e7e5, d2d4"`,
		"--excludeMoves h1h2",
		"--excludeCaptures",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
	o.Depth = -1
	if strings.Contains(o.String(), "--depth") {
		t.Error("unlimited depth was echoed")
	}
}

func TestApplyPreset(t *testing.T) {
	o := Options{EPD: "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - bm #36;", Depth: -1}
	applied, warning := o.ApplyPreset()
	if !applied {
		t.Fatal("preset for the default position was not applied")
	}
	if warning {
		t.Error("unexpected engine warning")
	}
	if o.ExcludeFrom != "e1" || o.ExcludeTo != "a1 c1" || !o.ExcludeToAttacked {
		t.Errorf("unexpected preset options: %s", o.String())
	}
}

func TestApplyPresetUnknownPosition(t *testing.T) {
	o := Options{EPD: "k7/8/1K6/8/8/8/8/7R w - - bm #1;", Depth: -1}
	if applied, _ := o.ApplyPreset(); applied {
		t.Error("preset applied for an unknown position")
	}
}

func TestApplyPresetKeepsExplicitOptions(t *testing.T) {
	o := Options{
		EPD:          "8/8/8/1p6/6k1/1p2Q3/p1p1p3/rbrbK3 w - - bm #36;",
		Depth:        -1,
		ExcludeMoves: "e3e4",
	}
	if applied, _ := o.ApplyPreset(); applied {
		t.Error("preset overrode explicit restrictions")
	}
	if o.ExcludeFrom != "" {
		t.Errorf("ExcludeFrom = %q, want empty", o.ExcludeFrom)
	}
}

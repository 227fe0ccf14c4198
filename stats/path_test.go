package stats

import (
	"testing"

	"tba-stats-service/event"
)

func TestResolvePathRootSubstitutesBothTokens(t *testing.T) {
	concrete, fromRoot := ResolvePath("/alliances/##ALLIANCE/score", event.AllianceRed)
	if !fromRoot {
		t.Fatalf("leading slash should mark a root path")
	}
	if concrete != "alliances/red/score" {
		t.Fatalf("unexpected path: %s", concrete)
	}

	concrete, _ = ResolvePath("/alliances/##OPPALLIANCE/score", event.AllianceRed)
	if concrete != "alliances/blue/score" {
		t.Fatalf("expected opponent substitution, got %s", concrete)
	}

	concrete, _ = ResolvePath("/score_breakdown/##OPPALLIANCE/towerEndStrength", event.AllianceBlue)
	if concrete != "score_breakdown/red/towerEndStrength" {
		t.Fatalf("expected red opponent for blue, got %s", concrete)
	}
}

func TestResolvePathRelativeSubstitutesOwnAllianceOnly(t *testing.T) {
	concrete, fromRoot := ResolvePath("teleopPoints", event.AllianceBlue)
	if fromRoot {
		t.Fatalf("breakdown-relative path misread as root path")
	}
	if concrete != "teleopPoints" {
		t.Fatalf("unexpected path: %s", concrete)
	}

	concrete, _ = ResolvePath("##ALLIANCE_bonus", event.AllianceBlue)
	if concrete != "blue_bonus" {
		t.Fatalf("own-alliance token should substitute, got %s", concrete)
	}

	// The opponent token stays literal in relative form.
	concrete, _ = ResolvePath("##OPPALLIANCE_bonus", event.AllianceBlue)
	if concrete != "##OPPALLIANCE_bonus" {
		t.Fatalf("opponent token should stay literal, got %s", concrete)
	}
}

func TestToGJSONPathSkipsEmptySegmentsAndEscapes(t *testing.T) {
	cases := map[string]string{
		"alliances/red/score":  "alliances.red.score",
		"//a//b/":              "a.b",
		"teleopPoints":         "teleopPoints",
		"weird.key/inner":      `weird\.key.inner`,
		"wild*card/q?/deep":    `wild\*card.q\?.deep`,
	}

	for in, want := range cases {
		if got := toGJSONPath(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestLookupResolvesNestedValues(t *testing.T) {
	doc := []byte(`{"alliances":{"red":{"score":41,"teams":["frc1"]}},"weird.key":{"inner":7}}`)

	res, ok := lookup(doc, "alliances/red/score")
	if !ok || res.Float() != 41 {
		t.Fatalf("expected 41, got %v ok=%v", res, ok)
	}

	res, ok = lookup(doc, "weird.key/inner")
	if !ok || res.Float() != 7 {
		t.Fatalf("expected escaped key lookup to find 7, got %v ok=%v", res, ok)
	}

	if _, ok := lookup(doc, "alliances/green/score"); ok {
		t.Fatalf("expected miss for absent path")
	}
	if _, ok := lookup(nil, "alliances/red/score"); ok {
		t.Fatalf("expected miss for empty document")
	}
}

package category

import (
	"testing"

	"github.com/fatih/color"
)

func TestLookupBuiltin(t *testing.T) {
	c := Lookup("Streaming")
	if c.Key != "streaming" {
		t.Fatalf("expected key streaming, got %q", c.Key)
	}
	if c.Label != "Streaming" {
		t.Fatalf("unexpected label: %q", c.Label)
	}
}

func TestLookupUnknownKeepsKey(t *testing.T) {
	c := Lookup("Vet Bills")
	if c.Key != "vet bills" {
		t.Fatalf("unknown categories must keep their key for grouping, got %q", c.Key)
	}
	if c.Label != "Vet Bills" {
		t.Fatalf("unexpected label: %q", c.Label)
	}
	general := Lookup(DefaultKey)
	if c.Color != general.Color {
		t.Fatalf("unknown categories must use the General visual config")
	}
}

func TestLookupEmptyFallsBackToGeneral(t *testing.T) {
	c := Lookup("")
	if c.Key != DefaultKey {
		t.Fatalf("expected %q, got %q", DefaultKey, c.Key)
	}
	if c.Label != "General" {
		t.Fatalf("unexpected label: %q", c.Label)
	}
	if c.Color != color.FgHiWhite {
		t.Fatalf("unexpected color: %v", c.Color)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mshalev/gematria/internal/gematria"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scheme() != gematria.DefaultScheme {
		t.Fatalf("scheme = %v, want default", cfg.Scheme())
	}
	if !cfg.BigTotal {
		t.Fatal("BigTotal should default to true")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		DefaultScheme: "english-ordinal",
		ShareBaseURL:  "https://example.com/calc",
		BigTotal:      false,
	}
	if err := Save(dir, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DefaultScheme != want.DefaultScheme || got.ShareBaseURL != want.ShareBaseURL || got.BigTotal != want.BigTotal {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
	if got.Scheme() != gematria.EnglishOrdinal {
		t.Fatalf("scheme = %v, want EnglishOrdinal", got.Scheme())
	}
}

func TestSchemeFallsBackOnUnknown(t *testing.T) {
	cfg := &Config{DefaultScheme: "not-a-scheme"}
	if cfg.Scheme() != gematria.DefaultScheme {
		t.Fatalf("scheme = %v, want default", cfg.Scheme())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

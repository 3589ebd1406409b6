package main

import (
	"path/filepath"
	"testing"
)

func TestSetup_MissingConfigReturnsError(t *testing.T) {
	if _, _, err := setup([]string{"-config", filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestSetup_BadFlagReturnsError(t *testing.T) {
	if _, _, err := setup([]string{"-seed", "not-a-number"}); err == nil {
		t.Fatal("expected a flag parse error")
	}
}

func TestSetup_BuildsWindowedGame(t *testing.T) {
	g, closeLog, err := setup([]string{"-seed", "5", "-autopilot", "120", "-log-level", "error"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closeLog()
	w, h := g.WindowSize()
	if w <= 0 || h <= 0 {
		t.Fatalf("expected a positive window size, got %dx%d", w, h)
	}
}

package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/snakeflow/game"
)

func TestFlagsApplyOnlyGiven(t *testing.T) {
	f := NewFlags("snakeflow", io.Discard)
	if err := f.Parse([]string{"-difficulty", "hard", "-training", "-sound=false", "-debug"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.Debug || f.Fresh {
		t.Errorf("debug=%v new=%v", f.Debug, f.Fresh)
	}

	base := Defaults()
	base.Theme = "desert"
	got, err := f.Apply(base)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Difficulty != game.DifficultyHard || !got.TrainingMode || got.SoundEffectsOn {
		t.Errorf("flag overrides = %+v", got)
	}
	if got.Theme != "desert" || !got.VibrationOn {
		t.Errorf("absent flags overrode settings: %+v", got)
	}
}

func TestFlagsRejectMalformed(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bool", []string{"-sound=loud"}},
		{"unknown flag", []string{"-speed", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewFlags("snakeflow", io.Discard).Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) accepted", tt.args)
			}
		})
	}

	f := NewFlags("snakeflow", io.Discard)
	if err := f.Parse([]string{"-zoom", "huge"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := f.Apply(Defaults()); err == nil {
		t.Error("Apply accepted -zoom huge")
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	file := "difficulty = \"easy\"\nzoom = 1.2\ntheme = \"ocean\"\nvolume = 0.3\n"
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFlags("snakeflow", io.Discard)
	if err := f.Parse([]string{"-config", path, "-theme", "lava"}); err != nil {
		t.Fatal(err)
	}
	env := mapLookup(map[string]string{
		"SNAKEFLOW_ZOOM":  "1.6",
		"SNAKEFLOW_THEME": "neon",
	})

	got, gotPath, err := Load(f, env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	// file < env < flags
	if got.Difficulty != game.DifficultyEasy || got.SoundEffectsVolume != 0.3 {
		t.Errorf("file values lost: %+v", got)
	}
	if got.GameZoom != 1.6 {
		t.Errorf("zoom = %v, want env value 1.6", got.GameZoom)
	}
	if got.Theme != "lava" {
		t.Errorf("theme = %q, want flag value lava", got.Theme)
	}
}

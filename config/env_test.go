package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/snakeflow/game"
)

func mapLookup(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName(KeyDataDir); got != "SNAKEFLOW_DATA_DIR" {
		t.Errorf("EnvName = %q", got)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SNAKEFLOW_DIFFICULTY": "easy",
		"SNAKEFLOW_ZOOM":       "wide",
		"SNAKEFLOW_VOLUME":     "0.9",
		"SNAKEFLOW_VIBRATION":  "false",
		"OTHER_ZOOM":           "2",
	}
	got, err := ApplyEnv(Defaults(), mapLookup(env))
	if err == nil {
		t.Error("malformed SNAKEFLOW_ZOOM not reported")
	}
	if got.Difficulty != game.DifficultyEasy || got.SoundEffectsVolume != 0.9 || got.VibrationOn {
		t.Errorf("valid overrides not applied: %+v", got)
	}
	if got.GameZoom != Defaults().GameZoom {
		t.Errorf("malformed zoom changed value to %v", got.GameZoom)
	}
}

func TestReadEnvFile(t *testing.T) {
	dir := t.TempDir()

	vars, err := ReadEnvFile(filepath.Join(dir, "absent.env"))
	if err != nil || len(vars) != 0 {
		t.Errorf("missing file = %v, %v", vars, err)
	}

	path := filepath.Join(dir, ".env")
	content := "# local overrides\nSNAKEFLOW_THEME=cyber\nSNAKEFLOW_TRAINING=true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	vars, err = ReadEnvFile(path)
	if err != nil {
		t.Fatalf("ReadEnvFile: %v", err)
	}
	got, err := ApplyEnv(Defaults(), mapLookup(vars))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if got.Theme != "cyber" || !got.TrainingMode {
		t.Errorf("env file overrides = %+v", got)
	}
}

func TestEnvLookupPrefersProcessEnv(t *testing.T) {
	t.Setenv("SNAKEFLOW_THEME", "ice")
	lookup := EnvLookup(map[string]string{"SNAKEFLOW_THEME": "lava", "SNAKEFLOW_ZOOM": "1.2"})

	if v, _ := lookup("SNAKEFLOW_THEME"); v != "ice" {
		t.Errorf("theme = %q, want process value ice", v)
	}
	if v, ok := lookup("SNAKEFLOW_ZOOM"); !ok || v != "1.2" {
		t.Errorf("zoom = %q %v, want file value 1.2", v, ok)
	}
}

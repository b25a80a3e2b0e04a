package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// Flags holds the parsed command line, setting overrides apply only when given
type Flags struct {
	ConfigPath string
	EnvFile    string
	Debug      bool
	Fresh      bool // ignore any saved round

	fs        *flag.FlagSet
	overrides []override
}

type override struct {
	key, value string
}

// NewFlags declares the command line of name
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(output)

	f.fs.StringVar(&f.ConfigPath, "config", "", "settings file (default <config dir>/snakeflow/"+FileName+")")
	f.fs.StringVar(&f.EnvFile, "env", ".env", "dotenv file with "+EnvPrefix+"* overrides")
	f.fs.BoolVar(&f.Debug, "debug", false, "write logs to logs/snakeflow.log")
	f.fs.BoolVar(&f.Fresh, "new", false, "start a new round even if a save exists")

	f.value(KeyDifficulty, "difficulty: easy, medium, hard")
	f.value(KeyZoom, "zoom multiplier for the minimum cell size (0.8-2.0)")
	f.value(KeyVolume, "sound effects volume (0-1)")
	f.value(KeyTheme, "theme id or auto")
	f.fs.Func("data-dir", "directory for save and record files", f.collect(KeyDataDir))
	f.toggle(KeyTraining, "training mode, speed stays constant")
	f.toggle(KeySound, "sound effects")
	f.toggle(KeyVibration, "terminal bell on game over")
	return f
}

func (f *Flags) value(key, usage string) {
	f.fs.Func(key, usage, f.collect(key))
}

func (f *Flags) toggle(key, usage string) {
	f.fs.BoolFunc(key, usage+" (-"+key+"=false to disable)", f.collect(key))
}

func (f *Flags) collect(key string) func(string) error {
	return func(v string) error {
		if key == KeyTraining || key == KeySound || key == KeyVibration {
			if _, err := strconv.ParseBool(v); err != nil {
				return err
			}
		}
		f.overrides = append(f.overrides, override{key: key, value: v})
		return nil
	}
}

// Parse reads args, excluding the program name
func (f *Flags) Parse(args []string) error {
	f.overrides = f.overrides[:0]
	return f.fs.Parse(args)
}

// Apply overlays the setting flags present on the command line onto s
func (f *Flags) Apply(s Settings) (Settings, error) {
	for _, o := range f.overrides {
		if err := s.Set(o.key, o.value); err != nil {
			return s, fmt.Errorf("flag -%s: %w", o.key, err)
		}
	}
	return s.Clamped(), nil
}

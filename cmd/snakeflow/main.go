package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeflow/app"
	"github.com/lixenwraith/snakeflow/config"
	"github.com/lixenwraith/snakeflow/core"
	"github.com/lixenwraith/snakeflow/input"
	"github.com/lixenwraith/snakeflow/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.NewFlags("snakeflow", os.Stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if logFile := setupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	settings, settingsPath, err := config.Load(flags, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snakeflow: %v\n", err)
		return 1
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		if dataDir, err = store.DefaultDir(); err != nil {
			fmt.Fprintf(os.Stderr, "snakeflow: %v\n", err)
			return 1
		}
	}

	keys, err := input.LoadKeyTable(filepath.Join(filepath.Dir(settingsPath), input.KeymapFile))
	if err != nil {
		// Bad keymap is not fatal, play with the defaults
		log.Printf("keymap: %v", err)
		keys = input.DefaultKeyTable()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snakeflow: create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "snakeflow: init screen: %v\n", err)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Terminal must be restored before a panic report reaches stderr
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	a, err := app.New(app.Options{
		Screen:       screen,
		Settings:     settings,
		SettingsPath: settingsPath,
		Store:        store.New(dataDir),
		Keys:         keys,
		Fresh:        flags.Fresh,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snakeflow: %v\n", err)
		return 1
	}

	if err := a.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "snakeflow: %v\n", err)
		return 1
	}
	log.Printf("session ended: settings=%s data=%s", settingsPath, dataDir)
	return 0
}

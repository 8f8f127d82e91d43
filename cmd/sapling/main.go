// Command sapling is a small level editor demo: it spawns sprites into a
// donburi world and lets you hover, select, drag and marquee-select them.
//
// Controls: left mouse selects and drags, shift adds to the selection, ctrl
// snaps drags to the grid, delete removes, escape clears, G groups the
// selection, the mouse wheel zooms, F1 toggles debug logging and F2 toggles
// the editor overlay.
package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sapling"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	screenW    = 1280
	screenH    = 720
	panelWidth = 240
)

func main() {
	flag.Parse()

	var level slog.LevelVar
	level.Set(levelFlag.value)
	var out io.Writer = os.Stderr
	if *logFileFlag != "" {
		out = &lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: &level}))
	slog.SetDefault(logger)
	sapling.SetLogger(logger)

	settings, err := loadOrCreateSettings(*settingsFlag)
	if err != nil {
		log.Fatal(err)
	}
	groups, err := loadGroups(*groupsFlag)
	if err != nil {
		log.Fatal(err)
	}

	g, err := newGame(settings, groups, &level)
	if err != nil {
		log.Fatal(err)
	}
	if *scriptFlag != "" {
		data, err := os.ReadFile(*scriptFlag)
		if err != nil {
			log.Fatal(err)
		}
		script, err := sapling.LoadInputScript(data)
		if err != nil {
			log.Fatal(err)
		}
		g.script = script
	}
	if *settingsFlag != "" {
		w, err := sapling.WatchSettings(*settingsFlag)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		g.watcher = w
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("sapling")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if *groupsFlag != "" {
		if err := groups.Save(*groupsFlag); err != nil {
			slog.Error("save groups", "err", err)
		}
	}
}

func loadOrCreateSettings(path string) (sapling.Settings, error) {
	if path == "" {
		return sapling.DefaultSettings(), nil
	}
	s, err := sapling.LoadSettings(path)
	if errors.Is(err, fs.ErrNotExist) {
		s = sapling.DefaultSettings()
		if err := s.Save(path); err != nil {
			return s, err
		}
		slog.Info("wrote default settings", "path", path)
		return s, nil
	}
	return s, err
}

func loadGroups(path string) (*sapling.Groups, error) {
	if path == "" {
		return sapling.NewGroups(), nil
	}
	g, err := sapling.LoadGroups(path)
	if errors.Is(err, fs.ErrNotExist) {
		return sapling.NewGroups(), nil
	}
	return g, err
}

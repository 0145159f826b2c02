package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hitboxes, hot reload, FPS)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	arenaName := flag.String("arena", "arena", "arena prefab in prefabs/ (basename, .yaml optional)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid -log-level", "value", *logLevel, "err", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(960, 640)
	ebiten.SetWindowTitle("topdown")

	game, err := NewGame(*arenaName, *debug, logger)
	if err != nil {
		logger.Error("start game", "err", err)
		os.Exit(1)
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}

// fps-arena runs the arena in the local terminal.
//
//	go run . [-seed N] [-enemies 5] [-hysteresis 0] [-log arena.log] [-cpuprofile DIR]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"fps-arena/internal/config"
	"fps-arena/internal/game"
	"fps-arena/internal/logging"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	logPath := flag.String("log", "", "write debug logs to this file")
	profDir := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *profDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profDir), profile.NoShutdownHook).Stop()
	}

	logger, closeLog, err := logging.Open(*logPath, slog.LevelDebug)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", *seed, "enemies", cfg.InitialEnemies)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	g, err := game.New(screen, cfg, rand.New(rand.NewSource(*seed)), logger)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

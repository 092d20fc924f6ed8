package main

import (
	"flag"
	"fmt"
	"os"

	"mrogue/internal/config"
	"mrogue/internal/game"
	"mrogue/internal/logger"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	// The terminal belongs to the game; logs go to a file or nowhere.
	out, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})

	runs, err := game.OpenRunLogStore("mrogue")
	if err != nil {
		logger.Log.WithError(err).Warn("run history disabled")
	}
	g, err := game.New(cfg, runs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}

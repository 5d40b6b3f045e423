// Command orthodrag-demo runs the interactive terminal demo of the
// segment-drag engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"orthodrag/config"
	"orthodrag/log"
	"orthodrag/terminal"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a YAML settings file (defaults apply if omitted)")
		edgeType   = flag.String("edge-type", "", "Edge style: straight, orthogonal or rounded")
		noSnap     = flag.Bool("no-snap", false, "Disable grid snapping")
	)
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "orthodrag-demo: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *edgeType != "" {
		cfg.Editor.EdgeType = *edgeType
	}
	if *noSnap {
		cfg.Editor.SnapToGrid = false
	}

	// The demo owns the terminal, so logs must go to a file; without
	// one, raise the level so nothing scribbles over the screen.
	if cfg.Logging.File == "" && os.Getenv("ORTHODRAG_LOG_FILE") == "" {
		cfg.Logging.Level = "error"
	}
	log.Init(log.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})

	if err := terminal.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "orthodrag-demo: %v\n", err)
		os.Exit(1)
	}
}

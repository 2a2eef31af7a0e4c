// Command gamepulse runs the game stats tracker. By default it starts the
// dashboard server with a scheduled refresh loop; with -once it performs a
// single snapshot run and exits, for cron-style batch usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gamepulse/internal/di"
	"gamepulse/internal/structures"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	debugMode := flag.Bool("debug", false, "Enable debug mode (console logging)")
	runOnce := flag.Bool("once", false, "Run a single snapshot refresh and exit")
	flag.Parse()

	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debugMode,
		RunOnce:    *runOnce,
	}

	if flags.RunOnce {
		batch, err := di.InitBatch(flags)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		if err := batch.Run(context.Background()); err != nil {
			os.Exit(1)
		}
		return
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

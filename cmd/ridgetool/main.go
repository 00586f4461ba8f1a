// Package main is ridgetool, a headless companion for inspecting terrain and
// replaying the player controller.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/logger"
)

var CLI struct {
	Debug  bool   `help:"Enable debug logging."`
	Config string `help:"Configuration file to start from." type:"existingfile" short:"c"`
	Preset string `help:"Override terrain.preset."`
	Seed   int64  `help:"Override terrain.seed; negative keeps the configured seed." default:"-1"`

	Sample struct {
		X float32 `arg:"" help:"World X."`
		Z float32 `arg:"" help:"World Z."`
	} `cmd:"" help:"Print the terrain height and band at a point."`

	Preview struct {
		Out  string `help:"Output image, .bmp or .png." default:"map.bmp"`
		Size int    `help:"Image width and height in pixels." default:"512"`
	} `cmd:"" help:"Render a hill-shaded top-down map."`

	Simulate struct {
		Frames int      `help:"Number of frames to step." default:"300"`
		Dt     float32  `help:"Seconds per frame." default:"0.016666668"`
		Hold   []string `help:"Keys held for the whole run, e.g. KeyW,Space." sep:","`
	} `cmd:"" help:"Run a headless session and print the final state."`

	Defaults struct{} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ridgetool"),
		kong.Description("inspect ridgeline terrain and replay the player controller"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	level := "warn"
	if CLI.Debug {
		level = "debug"
	}
	if err := logger.InitWithOptions(logger.Options{Level: level, Console: true}); err != nil {
		writeError(err)
	}
	defer logger.Sync()

	var err error
	switch ctx.Command() {
	case "config":
		err = configCommand()
	case "sample <x> <z>":
		err = sampleCommand(CLI.Sample.X, CLI.Sample.Z)
	case "preview":
		err = previewCommand(CLI.Preview.Out, CLI.Preview.Size)
	case "simulate":
		err = simulateCommand(CLI.Simulate.Frames, CLI.Simulate.Dt, CLI.Simulate.Hold)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		writeError(err)
	}
}

// loadConfig applies the global overrides to the configured file or defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.Preset != "" {
		cfg.Terrain.Preset = CLI.Preset
	}
	if CLI.Seed >= 0 {
		cfg.Terrain.Seed = uint64(CLI.Seed)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

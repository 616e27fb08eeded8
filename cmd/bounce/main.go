// bounce is a terminal demo: a ball bouncing inside a bordered court,
// rendered through a fixed-rate logic loop and a capped render loop.
//
// Keys:
//
//	q / Esc / Ctrl-C  - quit
//	f                 - toggle FPS overlay
//	m                 - mute sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termgrid/bounce"
	"github.com/lixenwraith/termgrid/config"
	"github.com/lixenwraith/termgrid/engine"
	"github.com/lixenwraith/termgrid/terminal"
)

var (
	flagConfig  string
	flagWidth   int
	flagHeight  int
	flagShowFPS bool
	flagMute    bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bouncing ball demo for the termgrid engine",
	Long: `bounce renders a ball bouncing inside a bordered court, driven by
a fixed-rate logic loop and an independently capped render loop.

Keys: q/Esc/Ctrl-C quit, f toggles the FPS overlay, m mutes sound.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "court width in cells")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "court height in cells")
	rootCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "show the FPS overlay")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "disable sound")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write debug log to file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags override the config file only when explicitly set
	if cmd.Flags().Changed("width") {
		cfg.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = flagHeight
	}
	if cmd.Flags().Changed("show-fps") {
		cfg.ShowFPS = flagShowFPS
	}
	if cmd.Flags().Changed("mute") {
		cfg.Sound = !flagMute
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flagLogFile
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	blip := bounce.NewBlip()
	if cfg.Sound {
		if err := blip.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing silent", "error", err)
		}
		defer blip.Cleanup()
	} else {
		blip.ToggleMute()
	}

	console := terminal.NewConsole(logger)
	game := engine.NewGame(console, engine.Options{
		Width:                  cfg.Width,
		Height:                 cfg.Height,
		LogicPeriod:            cfg.LogicPeriod(),
		RenderPeriod:           cfg.RenderPeriod(),
		SkipMissedRenderFrames: cfg.SkipMissedRenderFrames,
		ShowFPS:                cfg.ShowFPS,
		Logger:                 logger,
	})

	scene := engine.NewScene(
		bounce.NewBall(blip),
		bounce.NewControls(blip),
	)

	return game.Run(scene)
}

// newLogger builds the demo logger. The terminal is owned by the
// renderer, so logging goes to a file or nowhere.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termdemo/internal/config"
	"github.com/vovakirdan/termdemo/internal/core"
	"github.com/vovakirdan/termdemo/internal/effects"
	"github.com/vovakirdan/termdemo/internal/platform/tui"
)

func runShow(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
		cfg.Validate()
	}

	// The canvas is stdout; refusing early beats garbling a pipe.
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to query terminal size: %w", err)
	}

	mode := core.ModeAutoplay
	if flagInteractive {
		mode = core.ModeInteractive
	}

	playlist, err := effects.Playlist()
	if err != nil {
		return err
	}

	log.Debug("starting", "effects", len(playlist), "mode", mode, "fps", cfg.FPS,
		"cols", width, "rows", height)

	if err := tui.Run(playlist, cfg, mode, width, height); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}
	return nil
}

// setupLogging routes charmbracelet/log away from the canvas: to the file
// named by --debug, or nowhere.
func setupLogging() {
	if flagDebug == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(flagDebug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
}

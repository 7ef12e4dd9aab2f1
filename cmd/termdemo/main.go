// termdemo plays a playlist of procedural visual effects in the terminal,
// rendered as true-color half-block pixels.
//
// Usage:
//
//	termdemo              - Autoplay through the effect playlist
//	termdemo -i           - Start in interactive mode
//	termdemo list         - List available effects
//
// Global flags:
//
//	--fps <rate>      - Render tick rate (default from config, 60)
//	--config <path>   - Path to a custom config YAML
//	--debug <path>    - Write debug logs to a file (stdout is the canvas)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import effects to register them
	_ "github.com/vovakirdan/termdemo/internal/effects"
)

var (
	// Global flags
	flagInteractive bool
	flagFPS         int
	flagConfig      string
	flagDebug       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termdemo",
	Short: "Procedural visual effects in your terminal",
	Long: `termdemo cycles through a playlist of procedural effects rendered
with half-block glyphs at double vertical resolution.

Controls:
  n/Right, p/Left - next / previous effect
  1-9             - jump to effect
  Space           - pause
  Tab             - autoplay/interactive mode
  h               - toggle HUD
  f               - hold current effect (autoplay)
  Up/Down, [/]    - adjust / select parameter
  q/Esc           - quit

Examples:
  termdemo
  termdemo -i
  termdemo --fps 30 --config ./my.yaml
  termdemo list`,
	RunE: runShow,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Start in interactive mode")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Render tick rate (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDebug, "debug", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termdemo/internal/effects"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available effects in playlist order",
	Run: func(cmd *cobra.Command, args []string) {
		for i, id := range effects.Order() {
			fmt.Printf("%2d  %s\n", i+1, id)
		}
	},
}

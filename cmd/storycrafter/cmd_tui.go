package main

import (
	"github.com/spf13/cobra"

	"storycrafter/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	client, cleanup, err := openClient(cmd, true)
	if err != nil {
		return err
	}
	defer cleanup()

	// the TUI restores the session itself so the home screen shows while it loads
	client.Startup(cmd.Context(), false)
	return tui.Run(client.Controller)
}

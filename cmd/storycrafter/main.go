package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storycrafter",
	Short: "StoryCrafter Pro in the terminal",
	Long: `storycrafter turns product requirements into user stories with acceptance
criteria, using the StoryCrafter Story API.

Run without a subcommand to open the interactive terminal UI.

Examples:
  storycrafter login --email ada@example.com
  storycrafter generate "Shoppers can pay for their cart with a saved card"
  storycrafter chats`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(chatsCmd)
	rootCmd.AddCommand(generateCmd)

	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (the TUI discards logs otherwise)")
	rootCmd.PersistentFlags().String("api-url", "", "Story API base URL (overrides STORYCRAFTER_API_URL)")
}

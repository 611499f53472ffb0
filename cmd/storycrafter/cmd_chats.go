package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "List your chats",
	RunE:  runChats,
}

var generateCmd = &cobra.Command{
	Use:   "generate [requirement]",
	Short: "Generate a user story from a requirement",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	chatsCmd.Flags().BoolP("messages", "m", false, "Print every message")
}

func runChats(cmd *cobra.Command, args []string) error {
	_, st, cleanup, err := restoredSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	withMessages, _ := cmd.Flags().GetBool("messages")

	if len(st.Chats) == 0 {
		fmt.Println("No chats yet")
		return nil
	}
	for _, c := range st.Chats {
		project := ""
		if c.ProjectID != nil {
			if p, ok := st.FindProject(*c.ProjectID); ok {
				project = " [" + p.Name + "]"
			}
		}
		fmt.Printf("%4d  %s%s (%d messages)\n", c.ID, c.Title, project, len(c.Messages))
		if !withMessages {
			continue
		}
		for _, m := range c.Messages {
			who := "StoryCrafter"
			if m.IsUser {
				who = "You"
			}
			fmt.Printf("      %s: %s\n", who, strings.ReplaceAll(m.Text, "\n", "\n      "))
		}
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	client, st, cleanup, err := restoredSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := client.API.GenerateStory(cmd.Context(), st.Session.Token, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("generate story: %w", err)
	}
	fmt.Println(resp.Story)
	fmt.Printf("\n(saved as chat %d)\n", resp.ChatID)
	return nil
}

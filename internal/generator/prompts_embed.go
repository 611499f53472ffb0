package generator

import (
	_ "embed"
)

// systemPrompt is the instruction sent ahead of every requirement. It is embedded so the
// server binary does not need the source tree at runtime.
//
//go:embed prompts/storycrafter_pro.txt
var systemPrompt string

// SystemPrompt returns the built-in StoryCrafter Pro instruction.
func SystemPrompt() string {
	return systemPrompt
}

package prompts

import (
	_ "embed"

	"github.com/tmc/langchaingo/prompts"
)

//go:embed extraction.txt
var extractionTemplate string

//go:embed agent_system.txt
var AgentSystemPrompt string

var extractionPrompt = prompts.NewPromptTemplate(extractionTemplate, []string{"paragraph"})

// Extraction renders the extraction prompt for one paragraph.
func Extraction(paragraph string) (string, error) {
	return extractionPrompt.Format(map[string]any{"paragraph": paragraph})
}

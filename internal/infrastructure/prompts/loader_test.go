package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraction_EmbedsParagraph(t *testing.T) {
	paragraph := "Acme was founded on May 8, 1886 by Jane Doe."

	prompt, err := Extraction(paragraph)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Input paragraph: "+paragraph)
	assert.Contains(t, prompt, `{"S.No.": "<int>"`)
	assert.False(t, strings.Contains(prompt, "{{"), "template placeholders must be resolved")
}

func TestAgentSystemPrompt_NamesTheTool(t *testing.T) {
	assert.Contains(t, AgentSystemPrompt, "save_company_record")
}

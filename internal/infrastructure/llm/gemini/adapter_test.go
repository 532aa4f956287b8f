package gemini

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
)

func TestConvertResponseMessage_WithContent(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: `{"company_name": "Acme"}`,
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Equal(t, `{"company_name": "Acme"}`, result.Content)
	assert.Empty(t, result.ToolCalls)
}

func TestConvertResponseMessage_WithToolCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role: "assistant",
		ToolCalls: []openai.ToolCall{
			{
				ID:   "call_123",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "save_company_record",
					Arguments: `{"record":"{}"}`,
				},
			},
		},
	}

	result := convertResponseMessage(msg)

	assert.Equal(t, entity.RoleAssistant, result.Role)
	assert.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "call_123", result.ToolCalls[0].ID)
	assert.Equal(t, "save_company_record", result.ToolCalls[0].Name)
}

func TestConvertMessages_RolesAndToolReplies(t *testing.T) {
	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: "persist records"},
		{Role: entity.RoleUser, Content: "Save this company record to CSV: {}"},
		{
			Role: entity.RoleAssistant,
			ToolCalls: []entity.ToolCall{
				{ID: "call_1", Name: "save_company_record", Arguments: "{}"},
			},
		},
		{Role: entity.RoleTool, ToolCallID: "call_1", Name: "save_company_record", Content: "Record saved"},
	}

	result := convertMessages(messages)

	assert.Len(t, result, 4)
	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "user", result[1].Role)
	assert.Len(t, result[2].ToolCalls, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[2].ToolCalls[0].Type)
	assert.Equal(t, "tool", result[3].Role)
	assert.Equal(t, "call_1", result[3].ToolCallID)
	assert.Equal(t, "save_company_record", result[3].Name)
}

func TestConvertTools(t *testing.T) {
	defs := []entity.ToolDefinition{
		{
			Name:        "save_company_record",
			Description: "Writes extracted company data to a CSV file",
			Parameters:  map[string]interface{}{"type": "object"},
		},
	}

	result := convertTools(defs)

	assert.Len(t, result, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[0].Type)
	assert.Equal(t, "save_company_record", result[0].Function.Name)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "gemini-1.5-flash")

	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai/", cfg.BaseURL)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
}

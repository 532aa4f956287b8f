package agentwriter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shashibaranwal/company-info-extractor/internal/application/port/input"
	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
	"github.com/shashibaranwal/company-info-extractor/internal/usecase/extractor"
)

var _ input.AgentRunner = (*UseCase)(nil)

const maxIterations = 5

// RecordExtractor is the shared extraction step; both pipelines derive
// records the same way and differ only in how they persist them.
type RecordExtractor interface {
	ExtractRecord(ctx context.Context, paragraph string) (*entity.CompanyRecord, error)
}

// UseCase persists records through a tool-calling agent whose only tool is
// the CSV writer. The agent decides when to call the tool; the loop ends
// when the model answers without tool calls.
type UseCase struct {
	llm          output.LLMPort
	tools        output.ToolRegistry
	extractor    RecordExtractor
	logger       output.LoggerPort
	systemPrompt string
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	extractor RecordExtractor,
	logger output.LoggerPort,
	systemPrompt string,
) *UseCase {
	return &UseCase{
		llm:          llm,
		tools:        tools,
		extractor:    extractor,
		logger:       logger,
		systemPrompt: systemPrompt,
	}
}

// Run re-extracts a record from every paragraph and hands each one to the
// agent. Failures are logged and skipped per paragraph, matching the direct
// pipeline's fault isolation.
func (uc *UseCase) Run(ctx context.Context, essay string) (int, error) {
	saved := 0
	for _, paragraph := range extractor.SplitParagraphs(essay) {
		record, err := uc.extractor.ExtractRecord(ctx, paragraph)
		if err != nil {
			uc.logger.Error("Agent paragraph skipped", "paragraph", paragraph, "error", err)
			continue
		}

		answer, err := uc.saveRecord(ctx, record)
		if err != nil {
			uc.logger.Error("Agent save failed", "company", record.CompanyName, "error", err)
			continue
		}

		uc.logger.Info("Agent saved record", "company", record.CompanyName, "answer", answer)
		saved++
	}
	return saved, nil
}

func (uc *UseCase) saveRecord(ctx context.Context, record *entity.CompanyRecord) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	messages := []entity.Message{
		{Role: entity.RoleSystem, Content: uc.systemPrompt},
		{Role: entity.RoleUser, Content: "Save this company record to CSV: " + string(data)},
	}

	toolDefs := uc.tools.Definitions()

	for iteration := 1; iteration <= maxIterations; iteration++ {
		resp, err := uc.llm.Chat(ctx, output.ChatRequest{
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			return "", fmt.Errorf("llm request failed: %w", err)
		}

		messages = append(messages, resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			return resp.Message.Content, nil
		}

		for _, tc := range resp.Message.ToolCalls {
			observation := uc.executeTool(ctx, tc)

			messages = append(messages, entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    observation,
			})
		}
	}

	return "", fmt.Errorf("max iterations (%d) exceeded", maxIterations)
}

func (uc *UseCase) executeTool(ctx context.Context, tc entity.ToolCall) string {
	tool, ok := uc.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		uc.logger.Warn("Unknown tool called", "name", tc.Name)
		return fmt.Sprintf("Error: unknown tool '%s'", tc.Name)
	}

	uc.logger.Info("Executing tool", "name", tc.Name, "args", tc.Arguments)

	result, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		return "Error: " + err.Error()
	}

	return result
}

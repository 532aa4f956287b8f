package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
	"github.com/shashibaranwal/company-info-extractor/internal/usecase/extractor"
)

var _ output.ToolPort = (*SaveRecordTool)(nil)

// SaveRecordTool is the agent's only capability: append one extracted
// company record to the agent CSV file.
type SaveRecordTool struct {
	sink   output.RecordSink
	logger output.LoggerPort
}

func NewSaveRecordTool(sink output.RecordSink, logger output.LoggerPort) *SaveRecordTool {
	return &SaveRecordTool{sink: sink, logger: logger}
}

func (t *SaveRecordTool) Name() entity.ToolName { return entity.ToolSaveCompanyRecord }

func (t *SaveRecordTool) Description() string {
	return "Writes extracted company data to a CSV file. Input is a JSON string with fields: S.No., company_name, founding_date, founders."
}

func (t *SaveRecordTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"record": map[string]interface{}{
				"type":        "string",
				"description": "Company record as a JSON string",
			},
		},
		"required": []string{"record"},
	}
}

func (t *SaveRecordTool) Execute(ctx context.Context, args string) (string, error) {
	payload := args
	var input struct {
		Record json.RawMessage `json:"record"`
	}
	if err := json.Unmarshal([]byte(args), &input); err == nil && len(input.Record) > 0 {
		// The record arrives either as a JSON string or inlined as an object.
		var asString string
		if err := json.Unmarshal(input.Record, &asString); err == nil {
			payload = asString
		} else {
			payload = string(input.Record)
		}
	}

	raw, err := extractor.ExtractJSON(payload)
	if err != nil {
		return "", err
	}

	var record entity.CompanyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return "", fmt.Errorf("parse record: %w", err)
	}

	if err := t.sink.Append(ctx, []entity.CompanyRecord{record}); err != nil {
		return "", err
	}

	return fmt.Sprintf("Record for '%s' saved to CSV", record.CompanyName), nil
}

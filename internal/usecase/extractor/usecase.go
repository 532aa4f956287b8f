package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shashibaranwal/company-info-extractor/internal/application/port/input"
	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
)

var _ input.EssayProcessor = (*UseCase)(nil)

// PromptFunc renders the extraction prompt for one paragraph.
type PromptFunc func(paragraph string) (string, error)

type UseCase struct {
	llm     output.LLMPort
	sink    output.RecordSink
	logger  output.LoggerPort
	prompt  PromptFunc
	workers int
}

// New builds the direct extraction pipeline. workers bounds how many
// paragraphs are in flight at once; 1 means strictly sequential.
func New(
	llm output.LLMPort,
	sink output.RecordSink,
	logger output.LoggerPort,
	prompt PromptFunc,
	workers int,
) *UseCase {
	if workers < 1 {
		workers = 1
	}
	return &UseCase{
		llm:     llm,
		sink:    sink,
		logger:  logger,
		prompt:  prompt,
		workers: workers,
	}
}

// SplitParagraphs breaks an essay into its non-empty trimmed lines, the unit
// of extraction.
func SplitParagraphs(essay string) []string {
	var paragraphs []string
	for _, line := range strings.Split(essay, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}

// ExtractRecord runs one paragraph through the model and returns the parsed,
// date-normalized record.
func (uc *UseCase) ExtractRecord(ctx context.Context, paragraph string) (*entity.CompanyRecord, error) {
	prompt, err := uc.prompt(paragraph)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: 0.0,
	})
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}

	raw, err := ExtractJSON(resp.Message.Content)
	if err != nil {
		return nil, err
	}

	var record entity.CompanyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}

	normalized, err := NormalizeDate(record.FoundingDate)
	if err != nil {
		return nil, err
	}
	record.FoundingDate = normalized

	return &record, nil
}

// ProcessEssay extracts a record from every paragraph of the essay and
// flushes the batch to the sink. A failing paragraph is logged and skipped;
// the batch never aborts because of one paragraph.
func (uc *UseCase) ProcessEssay(ctx context.Context, essay string) ([]entity.CompanyRecord, error) {
	paragraphs := SplitParagraphs(essay)
	extracted := make([]*entity.CompanyRecord, len(paragraphs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)

	for i, paragraph := range paragraphs {
		g.Go(func() error {
			record, err := uc.ExtractRecord(gctx, paragraph)
			if err != nil {
				uc.logger.Error("Paragraph skipped", "paragraph", paragraph, "error", err)
				return nil
			}
			extracted[i] = record
			return nil
		})
	}

	// Workers only report nil; Wait is for completion, not failure.
	g.Wait()

	records := make([]entity.CompanyRecord, 0, len(paragraphs))
	for _, record := range extracted {
		if record != nil {
			records = append(records, *record)
		}
	}

	uc.logger.Info("Essay processed", "paragraphs", len(paragraphs), "extracted", len(records))

	if err := uc.sink.Append(ctx, records); err != nil {
		return nil, fmt.Errorf("flush records: %w", err)
	}

	return records, nil
}

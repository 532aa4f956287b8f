package extractor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/logger"
)

// fakeLLM answers each chat request from the respond hook, keyed on the last
// message content. Safe for concurrent use.
type fakeLLM struct {
	mu      sync.Mutex
	calls   int
	respond func(prompt string) (string, error)
}

func (f *fakeLLM) Chat(_ context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	prompt := req.Messages[len(req.Messages)-1].Content
	content, err := f.respond(prompt)
	if err != nil {
		return nil, err
	}
	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: content},
	}, nil
}

type fakeSink struct {
	mu      sync.Mutex
	batches [][]entity.CompanyRecord
}

func (f *fakeSink) Append(_ context.Context, records []entity.CompanyRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, records)
	return nil
}

func identityPrompt(paragraph string) (string, error) {
	return paragraph, nil
}

func TestSplitParagraphs(t *testing.T) {
	essay := "\n  first paragraph  \n\n second paragraph\n\t\n"
	assert.Equal(t, []string{"first paragraph", "second paragraph"}, SplitParagraphs(essay))
}

func TestProcessEssay_EndToEnd(t *testing.T) {
	llm := &fakeLLM{respond: func(string) (string, error) {
		return `Sure! {"S.No.": 1, "company_name": "Acme", "founding_date": "1886-5-8", "founders": "Jane Doe"}`, nil
	}}
	sink := &fakeSink{}
	uc := New(llm, sink, logger.NewNop(), identityPrompt, 1)

	records, err := uc.ProcessEssay(context.Background(), "Acme was founded on May 8, 1886 by Jane Doe.")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, entity.FlexInt(1), records[0].SeqNo)
	assert.Equal(t, "Acme", records[0].CompanyName)
	assert.Equal(t, "1886-05-08", records[0].FoundingDate)
	assert.Equal(t, "Jane Doe", records[0].Founders)

	require.Len(t, sink.batches, 1)
	assert.Equal(t, records, sink.batches[0])
}

func TestProcessEssay_FaultIsolation(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Brokenly") {
			return "no structured data here", nil
		}
		name := strings.Fields(prompt)[0]
		return fmt.Sprintf(`{"S.No.": 1, "company_name": %q, "founding_date": "1990", "founders": "Someone"}`, name), nil
	}}
	sink := &fakeSink{}
	uc := New(llm, sink, logger.NewNop(), identityPrompt, 1)

	essay := "Alpha was founded in 1990.\nBrokenly model answer.\nGamma was founded in 1990."
	records, err := uc.ProcessEssay(context.Background(), essay)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].CompanyName)
	assert.Equal(t, "Gamma", records[1].CompanyName)
	assert.Equal(t, 3, llm.calls)
}

func TestProcessEssay_LLMErrorSkipsParagraph(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		if strings.Contains(prompt, "Beta") {
			return "", fmt.Errorf("rate limited")
		}
		return `{"S.No.": 1, "company_name": "Alpha", "founding_date": "2001-7", "founders": "A"}`, nil
	}}
	sink := &fakeSink{}
	uc := New(llm, sink, logger.NewNop(), identityPrompt, 1)

	records, err := uc.ProcessEssay(context.Background(), "Alpha line.\nBeta line.")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2001-07-01", records[0].FoundingDate)
}

func TestProcessEssay_ConcurrentWorkersKeepOrder(t *testing.T) {
	llm := &fakeLLM{respond: func(prompt string) (string, error) {
		name := strings.Fields(prompt)[0]
		return fmt.Sprintf(`{"S.No.": 1, "company_name": %q, "founding_date": "1990", "founders": "X"}`, name), nil
	}}
	sink := &fakeSink{}
	uc := New(llm, sink, logger.NewNop(), identityPrompt, 4)

	essay := "P0 a.\nP1 b.\nP2 c.\nP3 d.\nP4 e.\nP5 f."
	records, err := uc.ProcessEssay(context.Background(), essay)
	require.NoError(t, err)

	require.Len(t, records, 6)
	for i, record := range records {
		assert.Equal(t, fmt.Sprintf("P%d", i), record.CompanyName)
	}
}

func TestExtractRecord_BadDate(t *testing.T) {
	llm := &fakeLLM{respond: func(string) (string, error) {
		return `{"S.No.": 1, "company_name": "Acme", "founding_date": "1886-5-8-extra", "founders": "J"}`, nil
	}}
	uc := New(llm, &fakeSink{}, logger.NewNop(), identityPrompt, 1)

	_, err := uc.ExtractRecord(context.Background(), "some paragraph")
	assert.ErrorIs(t, err, ErrBadDate)
}

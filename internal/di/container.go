package di

import (
	"fmt"

	"github.com/shashibaranwal/company-info-extractor/internal/adapter/tool"
	"github.com/shashibaranwal/company-info-extractor/internal/application/port/input"
	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/application/service"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/llm/gemini"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/logger"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/prompts"
	"github.com/shashibaranwal/company-info-extractor/internal/infrastructure/storage/csvfile"
	"github.com/shashibaranwal/company-info-extractor/internal/usecase/agentwriter"
	"github.com/shashibaranwal/company-info-extractor/internal/usecase/extractor"
)

type Container struct {
	LLM       output.LLMPort
	Logger    output.LoggerPort
	Tools     output.ToolRegistry
	Extractor input.EssayProcessor
	Agent     input.AgentRunner
}

type Config struct {
	GeminiAPIKey   string
	GeminiModel    string
	OutputCSV      string
	AgentOutputCSV string
	Workers        int
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter("extract")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := gemini.DefaultConfig(cfg.GeminiAPIKey, cfg.GeminiModel)
	llmCfg.Logger = log
	llm := gemini.NewGeminiAdapter(llmCfg)

	directSink := csvfile.New(cfg.OutputCSV, log)
	agentSink := csvfile.New(cfg.AgentOutputCSV, log)

	tools := service.NewToolRegistry()
	tools.Register(tool.NewSaveRecordTool(agentSink, log))

	extractorUC := extractor.New(llm, directSink, log, prompts.Extraction, cfg.Workers)
	agentUC := agentwriter.New(llm, tools, extractorUC, log, prompts.AgentSystemPrompt)

	return &Container{
		LLM:       llm,
		Logger:    log,
		Tools:     tools,
		Extractor: extractorUC,
		Agent:     agentUC,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

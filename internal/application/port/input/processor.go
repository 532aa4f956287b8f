package input

import (
	"context"

	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
)

// EssayProcessor runs the direct pipeline: extract a record per paragraph
// and flush the batch to the direct CSV sink.
type EssayProcessor interface {
	ProcessEssay(ctx context.Context, essay string) ([]entity.CompanyRecord, error)
}

// AgentRunner runs the agent-mediated pipeline: re-extract a record per
// paragraph and persist each one through the tool-calling agent. Returns the
// number of records the agent saved.
type AgentRunner interface {
	Run(ctx context.Context, essay string) (int, error)
}

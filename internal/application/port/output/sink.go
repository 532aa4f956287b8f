package output

import (
	"context"

	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
)

// RecordSink persists extracted records. Implementations are append-only:
// a record handed to Append is never updated or deleted afterwards.
type RecordSink interface {
	Append(ctx context.Context, records []entity.CompanyRecord) error
}

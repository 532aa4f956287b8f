package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/shashibaranwal/company-info-extractor/internal/application/port/output"
	"github.com/shashibaranwal/company-info-extractor/internal/domain/entity"
)

var _ output.RecordSink = (*Sink)(nil)

// Column order is pinned; the header is written once when the file is
// created and never re-checked on later appends.
var header = []string{"s_no", "company_name", "founding_date", "founders"}

// Sink appends records to a single CSV file, creating it with a header row
// on first use.
type Sink struct {
	path   string
	logger output.LoggerPort
}

func New(path string, logger output.LoggerPort) *Sink {
	return &Sink{path: path, logger: logger}
}

func (s *Sink) Append(_ context.Context, records []entity.CompanyRecord) error {
	if len(records) == 0 {
		return nil
	}

	_, statErr := os.Stat(s.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		w.Write(header)
	}
	for _, record := range records {
		w.Write(row(record))
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	s.logger.Info("CSV updated", "file", s.path, "rows", len(records), "created", writeHeader)
	return nil
}

func row(r entity.CompanyRecord) []string {
	return []string{
		strconv.Itoa(int(r.SeqNo)),
		r.CompanyName,
		r.FoundingDate,
		r.Founders,
	}
}

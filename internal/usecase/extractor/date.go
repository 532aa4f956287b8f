package extractor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadDate is returned when a founding date does not split into one, two
// or three hyphen-separated segments.
var ErrBadDate = errors.New("invalid date format")

// NormalizeDate reshapes a hyphen-delimited date fragment into a full
// YYYY-MM-DD string. A bare year becomes January 1st, a year-month pair
// becomes the 1st of that month. Month and day are zero-padded to two
// characters. The segments are not checked for calendar validity; the model
// is trusted to produce plausible numbers.
func NormalizeDate(date string) (string, error) {
	parts := strings.Split(strings.TrimSpace(date), "-")
	switch len(parts) {
	case 1:
		return fmt.Sprintf("%s-01-01", parts[0]), nil
	case 2:
		return fmt.Sprintf("%s-%s-01", parts[0], pad2(parts[1])), nil
	case 3:
		return fmt.Sprintf("%s-%s-%s", parts[0], pad2(parts[1]), pad2(parts[2])), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadDate, date)
	}
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}

package extractor

import (
	"errors"
)

// ErrNoJSON is returned when a model response contains no JSON object.
var ErrNoJSON = errors.New("no JSON object found in model output")

// ExtractJSON returns the first balanced {...} span in s. The scan is
// string- and escape-aware, so braces inside string values do not confuse
// the depth count. Matching the first balanced object rather than a greedy
// {.*} span keeps trailing model commentary that happens to contain braces
// out of the result.
func ExtractJSON(s string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], nil
				}
			}
		}
	}

	return "", ErrNoJSON
}

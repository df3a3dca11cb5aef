// Package wire defines the letter-keyed record shape used at the data layer
// boundary. Keys are single letters standing for the legacy spreadsheet's
// columns; the shape is a compatibility contract with existing frontend code
// and must not change per backend.
package wire

import "strconv"

// Record is a letter-keyed record. Most values are strings; structured
// payloads (such as chord chart column D) are JSON-marshalable values.
type Record map[string]any

// String returns the value under key as a string, or "" when absent or not
// a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the value under key parsed as an integer. Absent, empty, or
// unparsable values yield 0, matching how the legacy spreadsheet columns
// tolerated blanks.
func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool values cross the wire as the literal strings "TRUE" and "FALSE".
const (
	True  = "TRUE"
	False = "FALSE"
)

// FormatBool renders a bool in the wire's TRUE/FALSE convention.
func FormatBool(b bool) string {
	if b {
		return True
	}
	return False
}

// ParseBool reads the wire's TRUE/FALSE convention. Anything other than the
// literal "TRUE" is false.
func ParseBool(s string) bool {
	return s == True
}

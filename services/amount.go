package services

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Amount is a float64 that decodes permissively from JSON. Quotation items
// arrive straight from in-progress form state, so a numeric field may be a
// number, a numeric string, an empty string, null, or plain garbage. Anything
// that does not parse as a number becomes 0 rather than an error, mirroring
// the zero-default policy the live-edit path requires. Marshaling emits a
// plain JSON number.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*a = Amount(ParseAmount(s))
	return nil
}

// ParseAmount parses a numeric form value, returning 0 for anything that is
// missing or unparsable. Negative values pass through unchanged; rejecting
// them is a validation concern, not a parsing one.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

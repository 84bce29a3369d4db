package cnp

import "strings"

// separators are the characters tolerated between digit groups in form
// input. Anything else outside 0-9 marks the payload as non-numeric.
const separators = " \t-./"

// Sanitize strips every non-digit rune from s. Total and idempotent.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format returns s grouped for display as "D YY MM DD CC NNN K". Inputs
// whose length is not exactly 13 are returned unchanged; no partial
// grouping is attempted. Never fails, independent of validation.
func Format(s string) string {
	if len(s) != 13 {
		return s
	}
	return strings.Join([]string{
		s[0:1],   // sex/century digit
		s[1:3],   // year
		s[3:5],   // month
		s[5:7],   // day
		s[7:9],   // county
		s[9:12],  // sequence
		s[12:13], // control
	}, " ")
}

package cnp

import "strings"

// checksumWeights are the official control-digit coefficients applied to
// digits 1-12.
var checksumWeights = [12]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// ValidateFormat checks that raw carries exactly 13 decimal digits.
//
// Policy (see DESIGN.md): sanitization already removes non-digits, so the
// raw input is re-inspected to keep the NonDigit and WrongLength failures
// distinct. Characters outside digits and the tolerated separator set mark
// the payload as non-numeric; otherwise a digit count other than 13 is a
// length failure.
func ValidateFormat(raw string) Outcome {
	if strings.TrimSpace(raw) == "" {
		return failure(KindNotAValue, msgNotAValue)
	}
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			continue
		}
		if !strings.ContainsRune(separators, r) {
			return failure(KindNonDigit, msgNonDigit)
		}
	}
	if len(Sanitize(raw)) != 13 {
		return failure(KindWrongLength, msgWrongLength)
	}
	return Outcome{Valid: true}
}

// ValidateChecksum verifies the control digit of a sanitized 13-digit
// string. Inputs that are not 13 digits fail structurally first.
func ValidateChecksum(digits string) Outcome {
	if out := ValidateFormat(digits); !out.Valid {
		return out
	}
	if digit(digits, 12) != controlDigit(digits) {
		return failure(KindChecksumMismatch, msgChecksum)
	}
	return Outcome{Valid: true}
}

// controlDigit computes the expected 13th digit: the weighted sum of the
// first 12 digits mod 11, with remainder 10 collapsing to 1.
func controlDigit(digits string) int {
	sum := 0
	for i, w := range checksumWeights {
		sum += w * digit(digits, i)
	}
	if r := sum % 11; r != 10 {
		return r
	}
	return 1
}

func digit(s string, i int) int { return int(s[i] - '0') }

func atoi2(s string, i int) int { return digit(s, i)*10 + digit(s, i+1) }

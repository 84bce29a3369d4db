package cnp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		kind  Kind
	}{
		{"13 digits", "1234567890123", true, ""},
		{"13 digits with separators", "608-090.400 000 0", true, ""},
		{"empty", "", false, KindNotAValue},
		{"whitespace only", "   \t ", false, KindNotAValue},
		{"12 digits", "123456789012", false, KindWrongLength},
		{"14 digits", "12345678901234", false, KindWrongLength},
		{"letters in payload", "123456789012a", false, KindNonDigit},
		{"injection payload", "'; DROP TABLE--", false, KindNonDigit},
		{"digits padded with spaces", "  1234567890123  ", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ValidateFormat(tt.input)
			assert.Equal(t, tt.valid, out.Valid)
			assert.Equal(t, tt.kind, out.Kind)
		})
	}
}

func TestValidateFormat_WrongLengthMessage(t *testing.T) {
	out := ValidateFormat("123456789012")
	assert.False(t, out.Valid)
	assert.Equal(t, "must have exactly 13 digits", out.Message)
}

func TestValidateChecksum(t *testing.T) {
	t.Run("accepts correct control digit", func(t *testing.T) {
		// weighted sum 132, 132 mod 11 = 0, control digit 0
		out := ValidateChecksum("6080904000000")
		assert.True(t, out.Valid)
	})

	t.Run("rejects wrong control digit", func(t *testing.T) {
		out := ValidateChecksum("6080904000001")
		assert.False(t, out.Valid)
		assert.Equal(t, KindChecksumMismatch, out.Kind)
	})

	t.Run("remainder 10 collapses to control 1", func(t *testing.T) {
		// weighted sum 65, 65 mod 11 = 10, control digit collapses to 1
		out := ValidateChecksum("1900000000001")
		assert.True(t, out.Valid)

		out = ValidateChecksum("1900000000000")
		assert.False(t, out.Valid)
		assert.Equal(t, KindChecksumMismatch, out.Kind)
	})

	t.Run("structural failures surface first", func(t *testing.T) {
		out := ValidateChecksum("123")
		assert.False(t, out.Valid)
		assert.Equal(t, KindWrongLength, out.Kind)
	})
}

func TestControlDigit(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"6080904000000", 0},
		{"1980418400013", 3},
		{"5040229120012", 2},
		{"1900000000001", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, controlDigit(tt.digits), tt.digits)
	}
}

package cnp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits pass through", "6080904000000", "6080904000000"},
		{"separators stripped", "608-090.400 000 0", "6080904000000"},
		{"letters stripped", "a1b2c3", "123"},
		{"empty stays empty", "", ""},
		{"unicode stripped", "1​2é3", "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"608-090.400 000 0", "abc", "", "1234567890123"}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestFormat(t *testing.T) {
	t.Run("groups a 13-digit string", func(t *testing.T) {
		assert.Equal(t, "6 08 09 04 00 000 0", Format("6080904000000"))
	})

	t.Run("returns other lengths unchanged", func(t *testing.T) {
		for _, in := range []string{"", "123", "12345678901234", "6 08 09 04 00 000 0"} {
			assert.Equal(t, in, Format(in))
		}
	})

	t.Run("idempotent on grouped output", func(t *testing.T) {
		grouped := Format("6080904000000")
		assert.Equal(t, grouped, Format(grouped))
	})

	t.Run("formats regardless of validity", func(t *testing.T) {
		// Formatting is display-only; it never validates.
		assert.Equal(t, "9 99 99 99 99 999 9", Format("9999999999999"))
	})
}

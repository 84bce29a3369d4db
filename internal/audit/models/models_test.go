package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCNP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full identifier", "6080904000000", "608********00"},
		{"short input fully masked", "12345", "*****"},
		{"empty input fully masked", "", "*****"},
		{"six characters keeps edges", "123456", "123*56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCNP(tt.input))
		})
	}
}

// The birth date digits (positions 2-7) must never survive masking.
func TestMaskCNP_HidesBirthDate(t *testing.T) {
	masked := MaskCNP("6080904123456")
	assert.Equal(t, "********", masked[3:11])
}

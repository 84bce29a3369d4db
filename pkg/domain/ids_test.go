package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "praxis/pkg/domain-errors"
)

// TestParsePatientID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs".
func TestParsePatientID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePatientID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParsePatientID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParsePatientID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParsePatientID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, PatientID(valid), id)
	})
}

// TestParsePatientID_SecurityInvariants validates trust-boundary rejection of
// hostile inputs that reach the parser from path parameters.
func TestParsePatientID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"SQL injection attempt", "'; DROP TABLE patients;--"},
		{"path traversal", "../../../etc/passwd"},
		{"null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000"},
		{"oversized input", strings.Repeat("a", 1000)},
		{"whitespace only", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePatientID(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

// TestTypeDistinction verifies IDs stay distinct types. The commented
// assignments would fail to compile if types became aliases.
func TestTypeDistinction(t *testing.T) {
	patientID := PatientID(uuid.New())
	eventID := AuditEventID(uuid.New())

	// var _ PatientID = eventID      // compile error
	// var _ AuditEventID = patientID // compile error

	assert.NotEqual(t, uuid.UUID(patientID), uuid.UUID(eventID))
}

func TestPatientID_IsZero(t *testing.T) {
	assert.True(t, PatientID{}.IsZero())
	assert.False(t, NewPatientID().IsZero())
}

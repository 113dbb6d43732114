package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid minimal", "Abc123", false},
		{"valid longer", "Sup3rSecret", false},
		{"too short", "Ab1", true},
		{"no digit", "Abcdef", true},
		{"no uppercase", "abc123", true},
		{"no lowercase", "ABC123", true},
		{"empty", "", true},
		{"too long", strings.Repeat("Aa1", 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.uk", "x@y.org"}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "plain", "a@b", "a@b.c", "a b@c.com", "@no-local.com"}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("ok_user-1"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 31)))
	assert.Error(t, ValidateUsername("bad name"))
}

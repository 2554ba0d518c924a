package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDescription(t *testing.T) {
	long := strings.Repeat("x", 80)

	tests := []struct {
		name    string
		desc    string
		strict  bool
		wantErr bool
	}{
		{name: "valid description", desc: "add login", wantErr: false},
		{name: "empty is rejected", desc: "", wantErr: true},
		{name: "whitespace only is rejected", desc: "   ", wantErr: true},
		{name: "long description passes by default", desc: long, wantErr: false},
		{name: "long description fails in strict mode", desc: long, strict: true, wantErr: true},
		{name: "trailing period passes by default", desc: "add login.", wantErr: false},
		{name: "trailing period fails in strict mode", desc: "add login.", strict: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.desc, tt.strict)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStyleWarnings(t *testing.T) {
	t.Run("clean description has no warnings", func(t *testing.T) {
		assert.Empty(t, StyleWarnings("add login"))
	})

	t.Run("length warning", func(t *testing.T) {
		warnings := StyleWarnings(strings.Repeat("a", 73))
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "73 characters")
	})

	t.Run("exactly at the limit is fine", func(t *testing.T) {
		assert.Empty(t, StyleWarnings(strings.Repeat("a", 72)))
	})

	t.Run("trailing period warning", func(t *testing.T) {
		warnings := StyleWarnings("add login.")
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "period")
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		assert.Empty(t, StyleWarnings(strings.Repeat("ä", 72)))
	})

	t.Run("both warnings stack", func(t *testing.T) {
		warnings := StyleWarnings(strings.Repeat("a", 80) + ".")
		assert.Len(t, warnings, 2)
	})
}

func TestValidateRequired(t *testing.T) {
	validate := ValidateRequired("breaking change details")

	assert.NoError(t, validate("removes the v1 API"))
	assert.Error(t, validate(""))
	assert.Error(t, validate("   "))
	assert.Contains(t, validate("").Error(), "breaking change details")
}

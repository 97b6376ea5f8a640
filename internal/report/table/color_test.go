package table

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorHelper_FormatPercentage(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "100%",
			value:    100.0,
			expected: "100.0%",
		},
		{
			name:     "90%",
			value:    90.0,
			expected: "90.0%",
		},
		{
			name:     "50%",
			value:    50.0,
			expected: "50.0%",
		},
		{
			name:     "0%",
			value:    0.0,
			expected: "0.0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := helper.FormatPercentage(tt.value)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestColorHelper_FormatCount(t *testing.T) {
	// Disable colors for consistent testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()

	assert.Equal(t, "0", helper.FormatCount(0))
	assert.Equal(t, "42", helper.FormatCount(42))
}

func TestColorHelper_ColorsDisabledWhenNoColor(t *testing.T) {
	// Enable NoColor flag
	color.NoColor = true
	defer func() { color.NoColor = false }()

	helper := NewColorHelper()
	assert.False(t, helper.enabled)

	// Should return plain text
	assert.Equal(t, "test", helper.Success("test"))
	assert.Equal(t, "test", helper.Failure("test"))
	assert.Equal(t, "test", helper.Warning("test"))
	assert.Equal(t, "test", helper.Muted("test"))
	assert.Equal(t, "test", helper.Header("test"))
}

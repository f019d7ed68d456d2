package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestValidateManualEntryValid(t *testing.T) {
	assert.Empty(t, ValidateManualEntry("Com ga", 480, ptr(30), ptr(55), ptr(12)))
	assert.Empty(t, ValidateManualEntry("Com ga", 480, nil, nil, nil))
}

func TestValidateManualEntryName(t *testing.T) {
	problems := ValidateManualEntry("   ", 480, nil, nil, nil)
	assert.Contains(t, problems, "name is required")

	long := strings.Repeat("a", MaxFoodNameLength+1)
	problems = ValidateManualEntry(long, 480, nil, nil, nil)
	assert.Len(t, problems, 1)
}

func TestValidateManualEntryKcal(t *testing.T) {
	assert.NotEmpty(t, ValidateManualEntry("Com ga", 0, nil, nil, nil))
	assert.NotEmpty(t, ValidateManualEntry("Com ga", -10, nil, nil, nil))
	assert.NotEmpty(t, ValidateManualEntry("Com ga", MaxKcal+1, nil, nil, nil))
	assert.Empty(t, ValidateManualEntry("Com ga", MaxKcal, nil, nil, nil))
}

func TestValidateManualEntryMacros(t *testing.T) {
	problems := ValidateManualEntry("Com ga", 480, ptr(-1), nil, nil)
	assert.Contains(t, problems, "protein cannot be negative")

	problems = ValidateManualEntry("Com ga", 480, nil, ptr(MaxMacroGrams+1), nil)
	assert.Len(t, problems, 1)

	// Several problems are reported together.
	problems = ValidateManualEntry("", 0, ptr(-1), nil, ptr(-2))
	assert.Len(t, problems, 4)
}

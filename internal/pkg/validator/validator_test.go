package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	parsed, ok := IsValidClockTime("09:05")
	assert.True(t, ok)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 5, parsed.Minute())

	_, ok = IsValidClockTime("25:00")
	assert.False(t, ok)

	_, ok = IsValidClockTime("9am")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-0042"))
	assert.True(t, IsValidEmployeeCode("HR-123"))
	assert.False(t, IsValidEmployeeCode("emp-0042"))
	assert.False(t, IsValidEmployeeCode("EMP0042"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "value", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "must be non-negative", m["value"])
	assert.Contains(t, errs.Error(), "name: name is required")
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-01-07")
	assert.True(t, ok)

	_, ok = IsValidDate("07-01-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2024-01"))
	assert.True(t, IsValidMonth("2023-12"))
	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-1"))
	assert.False(t, IsValidMonth("2024-01-07"))
}

func TestDateInMonth(t *testing.T) {
	assert.True(t, DateInMonth("2024-01-07", "2024-01"))
	assert.False(t, DateInMonth("2024-01-07", "2024-02"))
	assert.False(t, DateInMonth("2023-01-07", "2024-01"))
}

func TestIsValidWorkerCode(t *testing.T) {
	assert.True(t, IsValidWorkerCode("W-101"))
	assert.True(t, IsValidWorkerCode("W-1024"))
	assert.False(t, IsValidWorkerCode("w-101"))
	assert.False(t, IsValidWorkerCode("W-9"))
	assert.False(t, IsValidWorkerCode("101"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("site.admin"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

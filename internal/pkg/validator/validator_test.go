package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co",
		"user+tag@example.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("0d2743f2-02b4-4a9f-9a0c-0e2f6f1b8a6d"))
	assert.False(t, IsValidID("not-a-uuid"))
	assert.False(t, IsValidID(""))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9 am"))
	assert.False(t, IsValidClockTime(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)
	_, ok = IsValidDate("31-01-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password too short"},
	}

	assert.Equal(t, "email: email is required; password: password too short", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "password too short", m["password"])
}

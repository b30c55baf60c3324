package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qa_automation/domain/entities"
)

func TestExtractFields(t *testing.T) {
	got := extractFields("signup on facebook with email bob@test.com password hunter2")
	assert.Equal(t, "bob@test.com", got[entities.FieldEmail])
	assert.Equal(t, "hunter2", got[entities.FieldPassword])
}

func TestExtractFieldsStripsTrailingPunctuation(t *testing.T) {
	got := extractFields("login with email bob@test.com.")
	assert.Equal(t, "bob@test.com", got[entities.FieldEmail])
}

func TestExtractFieldsBareEmail(t *testing.T) {
	got := extractFields("signup on reddit as carol@example.org")
	assert.Equal(t, "carol@example.org", got[entities.FieldEmail])
}

func TestExtractFieldsUsernameEmailOverlap(t *testing.T) {
	// An email given as the username should satisfy both slots.
	got := extractFields("login with username bob@test.com password pw12345")
	assert.Equal(t, "bob@test.com", got[entities.FieldUsername])
	assert.Equal(t, "bob@test.com", got[entities.FieldEmail])
}

func TestExtractFieldsNames(t *testing.T) {
	got := extractFields("signup with first name Alice last name Cooper")
	assert.Equal(t, "Alice", got[entities.FieldFirstName])
	assert.Equal(t, "Cooper", got[entities.FieldLastName])
}

func TestExtractFieldsNothingProvided(t *testing.T) {
	got := extractFields("go to wikipedia")
	assert.Empty(t, got)
}

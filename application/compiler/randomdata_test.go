package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"qa_automation/domain/entities"
)

func TestGeneratorEmail(t *testing.T) {
	g := newGenerator()

	a := g.email("")
	b := g.email("")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "@example.com")
	assert.True(t, strings.HasPrefix(a, "test"))
}

func TestGeneratorEmailSitePrefix(t *testing.T) {
	g := newGenerator()
	assert.True(t, strings.HasPrefix(g.email("linkedin"), "linkedin"))
	assert.True(t, strings.HasPrefix(g.email("twitter"), "twitter"))
	assert.True(t, strings.HasPrefix(g.email("github"), "test"))
}

func TestGeneratorPassword(t *testing.T) {
	g := newGenerator()
	pw := g.password()
	assert.Len(t, pw, 12)
	assert.NotEqual(t, pw, g.password())
}

func TestGeneratorNames(t *testing.T) {
	g := newGenerator()
	assert.Contains(t, firstNames, g.firstName())
	assert.Contains(t, lastNames, g.lastName())
	assert.Len(t, strings.Fields(g.fullName()), 2)
}

func TestGeneratorBirthdayDefaults(t *testing.T) {
	g := newGenerator()
	assert.Equal(t, "January", g.value(entities.FieldBirthMonth, ""))
	assert.Equal(t, "1", g.value(entities.FieldBirthDay, ""))
	assert.Equal(t, "1990", g.value(entities.FieldBirthYear, ""))
}

func TestResolveFieldPrefersProvided(t *testing.T) {
	g := newGenerator()
	provided := providedFields{entities.FieldEmail: "bob@test.com"}

	v, generated := resolveField(entities.FieldEmail, provided, g, "")
	assert.Equal(t, "bob@test.com", v)
	assert.False(t, generated)

	v, generated = resolveField(entities.FieldPassword, provided, g, "")
	assert.NotEmpty(t, v)
	assert.True(t, generated)
}

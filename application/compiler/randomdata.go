package compiler

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"qa_automation/domain/entities"
)

var (
	firstNames = []string{
		"John", "Jane", "David", "Sarah", "Michael",
		"Emily", "Robert", "Lisa", "William", "Maria",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Miller", "Davis", "Garcia", "Rodriguez", "Wilson",
	}
)

const (
	emailChars    = "abcdefghijklmnopqrstuvwxyz0123456789"
	passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"
)

// generator produces realistic throwaway values for signup forms. Each
// generator instance keeps its own rand source so parallel compiles do not
// contend on a lock.
type generator struct {
	rnd *rand.Rand
}

func newGenerator() *generator {
	return &generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *generator) randomString(n int, charset string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[g.rnd.Intn(len(charset))]
	}
	return string(b)
}

// email builds a unique throwaway address. Some registrars throttle the
// plain test prefix, so known picky sites get a site-specific one.
func (g *generator) email(site string) string {
	prefix := "test"
	switch site {
	case "linkedin", "twitter":
		prefix = site
	}
	return fmt.Sprintf("%s%d_%s@example.com",
		prefix, time.Now().Unix(), g.randomString(10, emailChars))
}

func (g *generator) password() string {
	return g.randomString(12, passwordChars)
}

func (g *generator) username() string {
	return fmt.Sprintf("user_%d_%s", time.Now().Unix(), g.randomString(8, emailChars))
}

func (g *generator) firstName() string {
	return firstNames[g.rnd.Intn(len(firstNames))]
}

func (g *generator) lastName() string {
	return lastNames[g.rnd.Intn(len(lastNames))]
}

func (g *generator) fullName() string {
	return g.firstName() + " " + g.lastName()
}

// value produces a generated value for any fillable field kind.
func (g *generator) value(kind entities.FieldKind, site string) string {
	switch kind {
	case entities.FieldEmail, entities.FieldEmailConfirm:
		return g.email(site)
	case entities.FieldPassword:
		return g.password()
	case entities.FieldUsername:
		return g.username()
	case entities.FieldFirstName:
		return g.firstName()
	case entities.FieldLastName:
		return g.lastName()
	case entities.FieldName:
		return g.fullName()
	case entities.FieldBirthDay:
		return "1"
	case entities.FieldBirthMonth:
		return "January"
	case entities.FieldBirthYear:
		return "1990"
	case entities.FieldGender:
		return "female"
	}
	return strings.ToLower(g.firstName())
}

// resolveField returns the value for a field, preferring what the operator
// provided over a generated one. The second return reports whether the
// value was generated.
func resolveField(kind entities.FieldKind, provided providedFields, g *generator, site string) (string, bool) {
	if v, ok := provided[kind]; ok {
		return v, false
	}
	return g.value(kind, site), true
}

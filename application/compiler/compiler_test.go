package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa_automation/domain/entities"
)

func kinds(actions []entities.Action) []entities.ActionKind {
	out := make([]entities.ActionKind, len(actions))
	for i, a := range actions {
		out[i] = a.Kind
	}
	return out
}

func TestCompileSearch(t *testing.T) {
	actions, err := New().Compile("search apples on google", false)
	require.NoError(t, err)

	assert.Equal(t, []entities.ActionKind{
		entities.ActionNavigate,
		entities.ActionWait,
		entities.ActionSearch,
		entities.ActionWait,
		entities.ActionValidate,
	}, kinds(actions))

	assert.Equal(t, "https://www.google.com", actions[0].URL)
	assert.Equal(t, "apples", actions[2].Query)
	assert.Equal(t, entities.ValidateSearch, actions[4].Validation)
}

func TestCompileSearchDefaultsToGoogle(t *testing.T) {
	actions, err := New().Compile("search for wireless headphones", false)
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com", actions[0].URL)
	assert.Equal(t, "wireless headphones", actions[2].Query)
}

func TestCompileSearchWithCart(t *testing.T) {
	actions, err := New().Compile("search wireless mouse on amazon and add to cart", false)
	require.NoError(t, err)

	ks := kinds(actions)
	assert.Contains(t, ks, entities.ActionClick)
	last := actions[len(actions)-1]
	assert.Equal(t, entities.ActionValidate, last.Kind)
	assert.Equal(t, entities.ValidateShopping, last.Validation)
}

func TestCompileSearchWithoutQuery(t *testing.T) {
	_, err := New().Compile("search on google", false)
	var cerr *entities.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Empty(t, cerr.MissingFields)
	assert.NotEmpty(t, cerr.Suggestion)
}

func TestCompileLoginWithCredentials(t *testing.T) {
	actions, err := New().Compile("login to github with username alice password s3cret", false)
	require.NoError(t, err)

	var typed []entities.Action
	for _, a := range actions {
		if a.Kind == entities.ActionType {
			typed = append(typed, a)
		}
	}
	require.Len(t, typed, 2)
	assert.Equal(t, entities.FieldUsername, typed[0].Field)
	assert.Equal(t, "alice", typed[0].Value)
	assert.False(t, typed[0].Generated)
	assert.Equal(t, entities.FieldPassword, typed[1].Field)
	assert.Equal(t, "s3cret", typed[1].Value)
	assert.False(t, typed[1].Generated)

	assert.Equal(t, entities.ActionValidate, actions[len(actions)-1].Kind)
	assert.Equal(t, entities.ValidateLogin, actions[len(actions)-1].Validation)
}

func TestCompileLoginNeverGeneratesCredentials(t *testing.T) {
	// Random data is allowed, but login credentials must still be real.
	_, err := New().Compile("login to github", true)
	var cerr *entities.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.ElementsMatch(t, []entities.FieldKind{
		entities.FieldUsername, entities.FieldPassword,
	}, cerr.MissingFields)
}

func TestCompileSignupMissingFields(t *testing.T) {
	_, err := New().Compile("signup on linkedin", false)
	var cerr *entities.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []entities.FieldKind{
		entities.FieldFirstName,
		entities.FieldLastName,
		entities.FieldEmail,
		entities.FieldPassword,
	}, cerr.MissingFields)
}

func TestCompileSignupWithRandomData(t *testing.T) {
	actions, err := New().Compile("signup on linkedin", true)
	require.NoError(t, err)

	var typed []entities.Action
	for _, a := range actions {
		if a.Kind == entities.ActionType {
			typed = append(typed, a)
		}
	}
	require.Len(t, typed, 4)
	for _, a := range typed {
		assert.True(t, a.Generated, "field %s should be generated", a.Field)
		assert.NotEmpty(t, a.Value)
	}

	last := actions[len(actions)-1]
	assert.Equal(t, entities.ActionValidate, last.Kind)
	assert.Equal(t, entities.ValidateSignup, last.Validation)
	assert.Contains(t, last.ExpectedText, "check your email")

	assert.Equal(t, entities.ActionDataNote, actions[0].Kind)
}

func TestCompileSignupProvidedValuesWin(t *testing.T) {
	actions, err := New().Compile("signup on linkedin with email bob@test.com", true)
	require.NoError(t, err)

	for _, a := range actions {
		if a.Kind == entities.ActionType && a.Field == entities.FieldEmail {
			assert.Equal(t, "bob@test.com", a.Value)
			assert.False(t, a.Generated)
			return
		}
	}
	t.Fatal("no email type action in plan")
}

func TestCompileNavigateKnownSite(t *testing.T) {
	actions, err := New().Compile("go to wikipedia", false)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, entities.ActionNavigate, actions[0].Kind)
	assert.Equal(t, "https://www.wikipedia.org", actions[0].URL)
	assert.Equal(t, entities.ActionWait, actions[1].Kind)
}

func TestCompileNavigateLiteralURL(t *testing.T) {
	actions, err := New().Compile("open example.com", false)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", actions[0].URL)
}

func TestCompileUnknownInstruction(t *testing.T) {
	_, err := New().Compile("do a barrel roll", false)
	var cerr *entities.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.NotEmpty(t, cerr.Suggestion)
}

func TestCompileEmptyInstruction(t *testing.T) {
	_, err := New().Compile("   ", false)
	var cerr *entities.CompileError
	require.True(t, errors.As(err, &cerr))
}

func TestCompileSearchKeepsArticles(t *testing.T) {
	actions, err := New().Compile("search the lord of the rings on google", false)
	require.NoError(t, err)
	assert.Equal(t, "the lord of the rings", actions[2].Query)
}

func TestCompileSiteAliases(t *testing.T) {
	for instruction, wantURL := range map[string]string{
		"open fb":     "https://www.facebook.com",
		"go to insta": "https://www.instagram.com",
		"go to x":     "https://twitter.com",
	} {
		actions, err := New().Compile(instruction, false)
		require.NoError(t, err, instruction)
		assert.Equal(t, wantURL, actions[0].URL, instruction)
	}
}

func TestCompileTwitterSignupFlow(t *testing.T) {
	actions, err := New().Compile("signup on twitter", true)
	require.NoError(t, err)

	var selects []entities.Action
	var nextClicks int
	var passwordTyped bool
	for _, a := range actions {
		switch a.Kind {
		case entities.ActionSelect:
			selects = append(selects, a)
		case entities.ActionClick:
			if a.MatchText == "Next" {
				nextClicks++
			}
		case entities.ActionType:
			if a.Field == entities.FieldPassword {
				passwordTyped = true
				assert.True(t, a.Generated)
			}
		}
	}

	require.Len(t, selects, 3)
	assert.Equal(t, "select[aria-label='Month']", selects[0].Selector)
	assert.Equal(t, "select[aria-label='Day']", selects[1].Selector)
	assert.Equal(t, "select[aria-label='Year']", selects[2].Selector)
	assert.Equal(t, 3, nextClicks)
	assert.True(t, passwordTyped)
	assert.Equal(t, entities.ActionValidate, actions[len(actions)-1].Kind)
}

func TestCompileFacebookSignupFlow(t *testing.T) {
	actions, err := New().Compile("signup on facebook", true)
	require.NoError(t, err)

	var opener bool
	var email, confirm string
	selectors := map[entities.FieldKind]string{}
	for _, a := range actions {
		switch {
		case a.Kind == entities.ActionClick && a.MatchText == "Create New Account":
			opener = true
		case a.Kind == entities.ActionType && a.Field == entities.FieldEmail:
			email = a.Value
		case a.Kind == entities.ActionType && a.Field == entities.FieldEmailConfirm:
			confirm = a.Value
		case a.Kind == entities.ActionSelect:
			selectors[a.Field] = a.Selector
		}
	}

	assert.True(t, opener)
	require.NotEmpty(t, email)
	assert.Equal(t, email, confirm)
	assert.Equal(t, "select[name='birthday_day']", selectors[entities.FieldBirthDay])
	assert.Equal(t, "select[name='birthday_month']", selectors[entities.FieldBirthMonth])
	assert.Equal(t, "select[name='birthday_year']", selectors[entities.FieldBirthYear])
}

func TestCompileTwitterLoginStepByStep(t *testing.T) {
	actions, err := New().Compile("login to twitter with username alice password s3cret", false)
	require.NoError(t, err)

	// The username screen comes before the password screen, with a Next
	// click between them.
	var order []string
	for _, a := range actions {
		switch {
		case a.Kind == entities.ActionType:
			order = append(order, string(a.Field))
		case a.Kind == entities.ActionClick:
			order = append(order, a.MatchText)
		}
	}
	assert.Equal(t, []string{"username", "Next", "password", "Log in"}, order)
}

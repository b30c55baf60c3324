package compiler

import (
	"fmt"
	"strings"

	"qa_automation/domain/entities"
)

// flowBuilder assembles an action sequence for one instruction. It tracks
// which values were generated so the plan carries provenance the engine
// can report.
type flowBuilder struct {
	profile  entities.SiteProfile
	site     string
	provided providedFields
	gen      *generator
	random   bool
}

// typeInto emits a type action for one field, resolving the value from the
// provided credentials or the generator.
func (b *flowBuilder) typeInto(kind entities.FieldKind) entities.Action {
	value, generated := resolveField(kind, b.provided, b.gen, b.site)
	return entities.Action{
		Kind:        entities.ActionType,
		Field:       kind,
		Value:       value,
		Generated:   generated,
		Description: fmt.Sprintf("Enter %s", strings.ReplaceAll(string(kind), "_", " ")),
	}
}

func wait(seconds float64) entities.Action {
	return entities.Action{Kind: entities.ActionWait, Seconds: seconds}
}

func click(text, description string) entities.Action {
	return entities.Action{
		Kind:        entities.ActionClick,
		MatchText:   text,
		Description: description,
	}
}

// searchFlow opens the site, runs the query, optionally adds the first
// result to the cart on shopping sites, and validates the outcome.
func (b *flowBuilder) searchFlow(query string, addToCart bool) []entities.Action {
	actions := []entities.Action{
		{Kind: entities.ActionNavigate, URL: b.profile.BaseURL,
			Description: fmt.Sprintf("Open %s", b.siteName())},
		wait(3),
		{Kind: entities.ActionSearch, Query: query,
			Selector:    b.profile.SearchSelector,
			Description: fmt.Sprintf("Search for %q", query)},
		wait(3),
	}
	validation := entities.ValidateSearch
	if addToCart && (b.site == "amazon" || b.site == "flipkart") {
		actions = append(actions,
			click("first result", "Open the first search result"),
			wait(2),
			click("Add to Cart", "Add the item to the cart"),
			wait(2),
		)
		validation = entities.ValidateShopping
	}
	actions = append(actions, entities.Action{
		Kind:          entities.ActionValidate,
		Validation:    validation,
		MinIndicators: 1,
		Description:   "Check the results page",
	})
	return actions
}

// loginFlow fills the site's login credentials and submits. Credentials
// are never generated; the caller has already verified they exist.
func (b *flowBuilder) loginFlow() []entities.Action {
	if b.profile.Flow == entities.FlowTwitter {
		return b.twitterLoginFlow()
	}
	actions := []entities.Action{
		{Kind: entities.ActionNavigate, URL: b.profile.LoginTarget(),
			Description: fmt.Sprintf("Open the %s login page", b.siteName())},
		wait(3),
	}
	for _, f := range b.loginFields() {
		actions = append(actions, b.typeInto(f))
	}
	actions = append(actions,
		click("Log in", "Submit the login form"),
		wait(4),
		entities.Action{
			Kind:          entities.ActionValidate,
			Validation:    entities.ValidateLogin,
			MinIndicators: 1,
			Description:   "Verify the login succeeded",
		},
	)
	return actions
}

// twitterLoginFlow handles the one-field-per-screen login dialog.
func (b *flowBuilder) twitterLoginFlow() []entities.Action {
	user := b.typeInto(entities.FieldUsername)
	pass := b.typeInto(entities.FieldPassword)
	return []entities.Action{
		{Kind: entities.ActionNavigate, URL: b.profile.LoginTarget(),
			Description: "Open the login dialog"},
		wait(4),
		user,
		click("Next", "Advance to the password screen"),
		wait(2),
		pass,
		click("Log in", "Submit the login form"),
		wait(4),
		{Kind: entities.ActionValidate, Validation: entities.ValidateLogin,
			MinIndicators: 1, Description: "Verify the login succeeded"},
	}
}

// signupFlow builds the registration sequence for the site's flow shape.
func (b *flowBuilder) signupFlow() []entities.Action {
	switch b.profile.Flow {
	case entities.FlowTwitter:
		return b.twitterSignupFlow()
	case entities.FlowFacebook:
		return b.facebookSignupFlow()
	case entities.FlowLinkedIn:
		return b.linkedinSignupFlow()
	}
	return b.genericSignupFlow()
}

func (b *flowBuilder) genericSignupFlow() []entities.Action {
	actions := []entities.Action{
		b.dataNote(),
		{Kind: entities.ActionNavigate, URL: b.profile.SignupTarget(),
			Description: fmt.Sprintf("Open the %s signup page", b.siteName())},
		wait(3),
	}
	for _, f := range b.signupFields() {
		actions = append(actions, b.typeInto(f))
	}
	actions = append(actions,
		click("Sign up", "Submit the registration form"),
		wait(5),
		entities.Action{
			Kind:          entities.ActionValidate,
			Validation:    entities.ValidateSignup,
			MinIndicators: 1,
			Description:   "Verify the account was created",
		},
	)
	return actions
}

// twitterSignupFlow walks the multi-screen dialog: name, email and
// birthday first, then two confirmation screens, then the password.
func (b *flowBuilder) twitterSignupFlow() []entities.Action {
	return []entities.Action{
		b.dataNote(),
		{Kind: entities.ActionNavigate, URL: b.profile.SignupTarget(),
			Description: "Open the signup dialog"},
		wait(4),
		b.typeInto(entities.FieldName),
		b.typeInto(entities.FieldEmail),
		{Kind: entities.ActionSelect, Field: entities.FieldBirthMonth,
			Selector: "select[aria-label='Month']", Value: b.resolve(entities.FieldBirthMonth),
			Description: "Pick the birth month"},
		{Kind: entities.ActionSelect, Field: entities.FieldBirthDay,
			Selector: "select[aria-label='Day']", Value: b.resolve(entities.FieldBirthDay),
			Description: "Pick the birth day"},
		{Kind: entities.ActionSelect, Field: entities.FieldBirthYear,
			Selector: "select[aria-label='Year']", Value: b.resolve(entities.FieldBirthYear),
			Description: "Pick the birth year"},
		click("Next", "Advance past the birthday screen"),
		wait(3),
		click("Next", "Confirm the signup settings"),
		wait(2),
		b.typeInto(entities.FieldPassword),
		click("Next", "Submit the password"),
		wait(3),
		{Kind: entities.ActionValidate, Validation: entities.ValidateSignup,
			MinIndicators: 1, Description: "Verify the signup advanced"},
	}
}

// facebookSignupFlow opens the registration dialog from the landing page
// and fills it in one screen. The email confirmation repeats the email
// value rather than resolving a fresh one.
func (b *flowBuilder) facebookSignupFlow() []entities.Action {
	email := b.typeInto(entities.FieldEmail)
	confirm := entities.Action{
		Kind:        entities.ActionType,
		Field:       entities.FieldEmailConfirm,
		Value:       email.Value,
		Generated:   email.Generated,
		Description: "Re-enter the email",
	}
	return []entities.Action{
		b.dataNote(),
		{Kind: entities.ActionNavigate, URL: b.profile.BaseURL,
			Description: "Open the landing page"},
		wait(3),
		{Kind: entities.ActionClick,
			Selector:    "a[data-testid='open-registration-form-button']",
			MatchText:   "Create New Account",
			Description: "Open the registration form"},
		wait(2),
		b.typeInto(entities.FieldFirstName),
		b.typeInto(entities.FieldLastName),
		email,
		confirm,
		b.typeInto(entities.FieldPassword),
		{Kind: entities.ActionSelect, Field: entities.FieldBirthDay,
			Selector: "select[name='birthday_day']", Value: b.resolve(entities.FieldBirthDay),
			Description: "Pick the birth day"},
		{Kind: entities.ActionSelect, Field: entities.FieldBirthMonth,
			Selector: "select[name='birthday_month']", Value: b.resolve(entities.FieldBirthMonth),
			Description: "Pick the birth month"},
		{Kind: entities.ActionSelect, Field: entities.FieldBirthYear,
			Selector: "select[name='birthday_year']", Value: b.resolve(entities.FieldBirthYear),
			Description: "Pick the birth year"},
		{Kind: entities.ActionClick, Selector: "input[name='sex'][value='1']",
			MatchText: "Female", Description: "Pick a gender option"},
		click("Sign Up", "Submit the registration form"),
		wait(5),
		{Kind: entities.ActionValidate, Validation: entities.ValidateSignup,
			MinIndicators: 1, Description: "Verify the account was created"},
	}
}

func (b *flowBuilder) linkedinSignupFlow() []entities.Action {
	actions := []entities.Action{
		b.dataNote(),
		{Kind: entities.ActionNavigate, URL: b.profile.SignupTarget(),
			Description: "Open the signup page"},
		wait(3),
	}
	for _, f := range b.signupFields() {
		actions = append(actions, b.typeInto(f))
	}
	actions = append(actions,
		click("Agree & Join", "Submit the registration form"),
		wait(5),
		entities.Action{
			Kind:          entities.ActionValidate,
			Validation:    entities.ValidateSignup,
			ExpectedText:  "check your email, enter the code, security verification",
			MinIndicators: 1,
			Description:   "Verify the signup reached verification",
		},
	)
	return actions
}

// navigateFlow just opens a URL and lets the page settle.
func (b *flowBuilder) navigateFlow(url, what string) []entities.Action {
	return []entities.Action{
		{Kind: entities.ActionNavigate, URL: url,
			Description: fmt.Sprintf("Open %s", what)},
		wait(3),
	}
}

// dataNote records that generated values are in play so the run report
// can flag them.
func (b *flowBuilder) dataNote() entities.Action {
	msg := "Using provided account data"
	if b.random {
		msg = "Generating random account data for unfilled fields"
	}
	return entities.Action{Kind: entities.ActionDataNote, Message: msg,
		Description: "Record where the form data comes from"}
}

func (b *flowBuilder) resolve(kind entities.FieldKind) string {
	v, _ := resolveField(kind, b.provided, b.gen, b.site)
	return v
}

func (b *flowBuilder) loginFields() []entities.FieldKind {
	if len(b.profile.LoginFields) > 0 {
		return b.profile.LoginFields
	}
	return []entities.FieldKind{entities.FieldEmail, entities.FieldPassword}
}

func (b *flowBuilder) signupFields() []entities.FieldKind {
	if len(b.profile.SignupFields) > 0 {
		return b.profile.SignupFields
	}
	return []entities.FieldKind{entities.FieldEmail, entities.FieldPassword}
}

func (b *flowBuilder) siteName() string {
	if b.site != "" {
		return b.site
	}
	return "the site"
}

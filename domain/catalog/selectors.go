// Package catalog holds the static data the compiler and engine share:
// prioritized selector candidates, validation phrase sets and the site
// profile registry. Pure data, no behavior beyond lookups.
package catalog

import "qa_automation/domain/entities"

// fieldSelectors lists candidate locators per semantic field, highest
// priority first. Site-specific selectors sit above the generic ones so
// known sites resolve before the broad fallbacks fire.
var fieldSelectors = map[entities.FieldKind][]string{
	entities.FieldSearch: {
		"#searchInput",
		"input[name='search']",
		"#twotabsearchtextbox",
		"#search",
		".search-input",
		"input[type='search']",
		"input[name='q']",
		"textarea[name='q']",
		"input[name='search_query']",
		"input[placeholder*='Search' i]",
		"input[title='Search']",
		"input[type='text']",
		"input",
	},
	entities.FieldEmail: {
		"input[name='email-address']",
		"input[type='email']",
		"input[name='email']",
		"input[name='session_key']",
		"input[name='reg_email__']",
		"input[id='email']",
		"input[placeholder*='email' i]",
		"input[autocomplete='email']",
	},
	entities.FieldEmailConfirm: {
		"input[name='reg_email_confirmation__']",
		"input[placeholder*='confirm' i]",
		"input[type='email']",
	},
	entities.FieldUsername: {
		"input[autocomplete='username']",
		"input[name='text']",
		"input[type='text']",
		"input[name='username']",
		"input[name='session_username']",
		"input[id='username']",
		"input[placeholder*='username' i]",
		"input[placeholder*='Phone' i]",
	},
	entities.FieldPassword: {
		"input[type='password']",
		"input[name='pass']",
		"input[name='password']",
		"input[name='session_password']",
		"input[name='reg_passwd__']",
		"input[placeholder*='password' i]",
		"input[autocomplete='new-password']",
	},
	entities.FieldName: {
		"input[name='name']",
		"input[data-testid*='name']",
		"input[placeholder*='name' i]",
		"input[placeholder*='Full name' i]",
	},
	entities.FieldFirstName: {
		"input[name='first-name']",
		"input[id='first-name']",
		"input[name='firstname']",
		"input[name='firstName']",
		"input[placeholder*='first name' i]",
	},
	entities.FieldLastName: {
		"input[name='last-name']",
		"input[id='last-name']",
		"input[name='lastname']",
		"input[name='lastName']",
		"input[placeholder*='last name' i]",
	},
	entities.FieldBirthMonth: {
		"select[aria-label='Month']",
		"select[name='birthday_month']",
		"select[id='month']",
	},
	entities.FieldBirthDay: {
		"select[aria-label='Day']",
		"select[name='birthday_day']",
		"select[id='day']",
	},
	entities.FieldBirthYear: {
		"select[aria-label='Year']",
		"select[name='birthday_year']",
		"select[id='year']",
	},
}

// ActionTarget names a catalog list of clickable-element candidates.
type ActionTarget string

const (
	TargetLoginButton  ActionTarget = "login_button"
	TargetSignupButton ActionTarget = "signup_button"
	TargetSubmitButton ActionTarget = "submit_button"
	TargetNextButton   ActionTarget = "next_button"
	TargetAddToCart    ActionTarget = "add_to_cart"
	TargetSearchButton ActionTarget = "search_button"
)

var actionSelectors = map[ActionTarget][]string{
	TargetLoginButton: {
		"button[name='login']",
		"button:has-text('Log in')",
		"button:has-text('Sign in')",
		"button[type='submit']",
		"button[data-testid*='Login']",
		"div[role='button']:has-text('Log in')",
		"input[type='submit'][value='Sign in']",
	},
	TargetSignupButton: {
		"a[data-testid='open-registration-form-button']",
		"a:has-text('Create New Account')",
		"a:has-text('Sign up')",
		"button:has-text('Sign up')",
		"button:has-text('Create account')",
		"button:has-text('Join')",
		"button:has-text('Agree & Join')",
		"button:has-text('Join now')",
	},
	TargetSubmitButton: {
		"button[name='websubmit']",
		"button[type='submit']",
		"button:has-text('Next')",
		"button:has-text('Continue')",
		"button:has-text('Submit')",
	},
	TargetNextButton: {
		"button:has-text('Next')",
		"div[role='button']:has-text('Next')",
		"button[type='submit']",
		"span:has-text('Next')",
	},
	TargetAddToCart: {
		"#add-to-cart-button",
		"button:has-text('Add to Cart')",
		"input[value='Add to Cart']",
		"button[id*='add-to-cart' i]",
		"button[class*='add-to-cart' i]",
	},
	TargetSearchButton: {
		"#searchButton",
		".search-button",
		"button[aria-label*='search' i]",
		"input[type='submit'][value='Google Search']",
		"button[type='submit']",
		"input[value='Search']",
		"button:has-text('Search')",
		"input[type='submit'][value*='Search' i]",
	},
}

// CookieBannerSelectors are tried once after navigation to clear consent
// overlays that would otherwise sit above every form.
var CookieBannerSelectors = []string{
	"button:has-text('Accept all cookies')",
	"button:has-text('Accept cookies')",
	"button:has-text('I accept')",
	"button:has-text('Agree')",
	"button:has-text('Accept all')",
	".accept-cookies",
	"#accept-cookies",
	"button[aria-label*='cookie' i]",
	"button[aria-label*='accept' i]",
	"#sp-cc-accept",
}

// FieldCandidates returns the prioritized selector list for a field kind.
// The returned slice must not be mutated.
func FieldCandidates(kind entities.FieldKind) []string {
	return fieldSelectors[kind]
}

// ActionCandidates returns the prioritized selector list for a clickable
// target.
func ActionCandidates(target ActionTarget) []string {
	return actionSelectors[target]
}

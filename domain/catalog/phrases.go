package catalog

import "qa_automation/domain/entities"

// Phrase sets used by page validation. Everything is lowercase; the engine
// lowercases page text before matching.

// validationPatterns pairs success and failure phrases per validation kind.
type validationPatterns struct {
	success []string
	failure []string
}

var patternsByKind = map[entities.ValidationKind]validationPatterns{
	entities.ValidateLogin: {
		success: []string{
			"welcome",
			"dashboard",
			"profile",
			"logout",
			"sign out",
			"my account",
			"home",
			"feed",
			"notifications",
		},
		failure: []string{
			"incorrect password",
			"wrong password",
			"invalid email",
			"invalid username",
			"account not found",
			"couldn't find your account",
			"login failed",
			"the password you entered is incorrect",
			"please re-enter",
			"captcha",
			"verify you're human",
			"suspicious activity",
		},
	},
	entities.ValidateSignup: {
		success: []string{
			"verify your email",
			"verification",
			"check your email",
			"confirm your email",
			"welcome",
			"account created",
			"almost there",
			"verification code",
			"enter the code",
			"confirm your account",
		},
		failure: []string{
			"email already exists",
			"email is already taken",
			"already registered",
			"already in use",
			"username is taken",
			"password is too weak",
			"invalid email",
			"something went wrong",
			"try again later",
		},
	},
	entities.ValidateShopping: {
		success: []string{
			"added to cart",
			"added to basket",
			"cart",
			"proceed to checkout",
			"subtotal",
			"in your cart",
			"item added",
		},
		failure: []string{
			"out of stock",
			"currently unavailable",
			"no results found",
			"could not add",
		},
	},
	entities.ValidateSearch: {
		success: []string{
			"results",
			"showing",
			"search results",
			"about",
			"found",
		},
		failure: []string{
			"no results found",
			"did not match any documents",
			"nothing found",
			"0 results",
		},
	},
	entities.ValidateGeneric: {
		success: []string{
			"welcome",
			"success",
			"home",
		},
		failure: []string{
			"error",
			"404",
			"not found",
			"access denied",
		},
	},
}

// LinkedInSignupSuccess short-circuits signup validation on LinkedIn, whose
// confirmation page rarely contains the generic phrases.
var LinkedInSignupSuccess = []string{
	"check your email",
	"enter the code",
	"security verification",
	"let's do a quick security check",
	"confirm your email",
}

// WikipediaIndicators short-circuits search validation on Wikipedia, where
// article pages never say "results".
var WikipediaIndicators = []string{
	"from wikipedia",
	"wikipedia, the free encyclopedia",
	"article",
	"references",
	"contents",
}

// SuccessPhrases returns the success phrase set for a validation kind,
// falling back to the generic set for unknown kinds.
func SuccessPhrases(kind entities.ValidationKind) []string {
	if p, ok := patternsByKind[kind]; ok {
		return p.success
	}
	return patternsByKind[entities.ValidateGeneric].success
}

// FailurePhrases returns the failure phrase set for a validation kind.
func FailurePhrases(kind entities.ValidationKind) []string {
	if p, ok := patternsByKind[kind]; ok {
		return p.failure
	}
	return patternsByKind[entities.ValidateGeneric].failure
}

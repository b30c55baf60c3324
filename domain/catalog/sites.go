package catalog

import (
	"fmt"
	"strings"

	"qa_automation/domain/entities"
)

// profiles is the registry of sites the compiler knows how to drive.
// Selectors and flow choices here override the generic fallbacks.
var profiles = map[string]entities.SiteProfile{
	"facebook": {
		ID:        "facebook",
		BaseURL:   "https://www.facebook.com",
		LoginURL:  "https://www.facebook.com/login",
		SignupURL: "https://www.facebook.com/reg",
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldFirstName, entities.FieldLastName,
			entities.FieldEmail, entities.FieldPassword,
			entities.FieldBirthDay, entities.FieldBirthMonth, entities.FieldBirthYear,
		},
		Flow: entities.FlowFacebook,
	},
	"twitter": {
		ID:        "twitter",
		BaseURL:   "https://twitter.com",
		LoginURL:  "https://twitter.com/i/flow/login",
		SignupURL: "https://twitter.com/i/flow/signup",
		LoginFields: []entities.FieldKind{
			entities.FieldUsername, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldName, entities.FieldEmail, entities.FieldPassword,
			entities.FieldBirthMonth, entities.FieldBirthDay, entities.FieldBirthYear,
		},
		Flow: entities.FlowTwitter,
	},
	"instagram": {
		ID:        "instagram",
		BaseURL:   "https://www.instagram.com",
		LoginURL:  "https://www.instagram.com/accounts/login",
		SignupURL: "https://www.instagram.com/accounts/emailsignup",
		LoginFields: []entities.FieldKind{
			entities.FieldUsername, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldName,
			entities.FieldUsername, entities.FieldPassword,
		},
		Flow: entities.FlowGeneric,
	},
	"linkedin": {
		ID:        "linkedin",
		BaseURL:   "https://www.linkedin.com",
		LoginURL:  "https://www.linkedin.com/login",
		SignupURL: "https://www.linkedin.com/signup",
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldFirstName, entities.FieldLastName,
			entities.FieldEmail, entities.FieldPassword,
		},
		Flow: entities.FlowLinkedIn,
	},
	"amazon": {
		ID:             "amazon",
		BaseURL:        "https://www.amazon.com",
		LoginURL:       "https://www.amazon.com/ap/signin",
		SignupURL:      "https://www.amazon.com/ap/register",
		SearchSelector: "#twotabsearchtextbox",
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldName, entities.FieldEmail, entities.FieldPassword,
		},
		Flow: entities.FlowGeneric,
	},
	"flipkart": {
		ID:             "flipkart",
		BaseURL:        "https://www.flipkart.com",
		LoginURL:       "https://www.flipkart.com/account/login",
		SearchSelector: "input[name='q']",
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		Flow: entities.FlowGeneric,
	},
	"google": {
		ID:             "google",
		BaseURL:        "https://www.google.com",
		LoginURL:       "https://accounts.google.com/signin",
		SignupURL:      "https://accounts.google.com/signup",
		SearchSelector: "textarea[name='q']",
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		Flow: entities.FlowGeneric,
	},
	"youtube": {
		ID:             "youtube",
		BaseURL:        "https://www.youtube.com",
		SearchSelector: "input[name='search_query']",
		Flow:           entities.FlowGeneric,
	},
	"wikipedia": {
		ID:             "wikipedia",
		BaseURL:        "https://www.wikipedia.org",
		SearchSelector: "#searchInput",
		Flow:           entities.FlowGeneric,
	},
	"reddit": {
		ID:        "reddit",
		BaseURL:   "https://www.reddit.com",
		LoginURL:  "https://www.reddit.com/login",
		SignupURL: "https://www.reddit.com/register",
		LoginFields: []entities.FieldKind{
			entities.FieldUsername, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldUsername, entities.FieldPassword,
		},
		SearchSelector: "input[name='q']",
		Flow:           entities.FlowGeneric,
	},
	"github": {
		ID:        "github",
		BaseURL:   "https://github.com",
		LoginURL:  "https://github.com/login",
		SignupURL: "https://github.com/signup",
		LoginFields: []entities.FieldKind{
			entities.FieldUsername, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword, entities.FieldUsername,
		},
		Flow: entities.FlowGeneric,
	},
}

// aliases maps common spellings onto registry ids.
var aliases = map[string]string{
	"x":         "twitter",
	"x.com":     "twitter",
	"wiki":      "wikipedia",
	"linked in": "linkedin",
	"fb":        "facebook",
	"insta":     "instagram",
}

// Lookup resolves a site name or alias to its profile.
func Lookup(name string) (entities.SiteProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	p, ok := profiles[key]
	return p, ok
}

// Generic builds a best-effort profile for a site the registry does not
// know, pointing at https://<site>.com.
func Generic(site string) entities.SiteProfile {
	site = strings.ToLower(strings.TrimSpace(site))
	base := fmt.Sprintf("https://www.%s.com", site)
	return entities.SiteProfile{
		BaseURL: base,
		LoginFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		SignupFields: []entities.FieldKind{
			entities.FieldEmail, entities.FieldPassword,
		},
		Flow: entities.FlowGeneric,
	}
}

// Known reports whether a name (or alias) resolves to a registry profile.
func Known(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// SiteIDs returns all registry ids, for a deterministic scan order callers
// sort the result themselves.
func SiteIDs() []string {
	out := make([]string, 0, len(profiles))
	for id := range profiles {
		out = append(out, id)
	}
	return out
}

// KnownNames returns every name Lookup accepts: registry ids and aliases
// alike. Callers sort for a deterministic scan order.
func KnownNames() []string {
	out := make([]string, 0, len(profiles)+len(aliases))
	for id := range profiles {
		out = append(out, id)
	}
	for a := range aliases {
		out = append(out, a)
	}
	return out
}

package entities

// SignupFlow identifies which step-sequence builder a site's signup uses.
type SignupFlow string

const (
	FlowGeneric  SignupFlow = "generic"
	FlowTwitter  SignupFlow = "twitter_step_by_step"
	FlowFacebook SignupFlow = "facebook"
	FlowLinkedIn SignupFlow = "linkedin"
)

// SiteProfile is the static metadata for one known target website.
// An empty ID means the generic profile.
type SiteProfile struct {
	ID             string
	BaseURL        string
	LoginURL       string
	SignupURL      string
	LoginFields    []FieldKind
	SignupFields   []FieldKind
	SearchSelector string
	Flow           SignupFlow
}

// Known reports whether the profile describes a site from the registry
// rather than the generic fallback.
func (p SiteProfile) Known() bool {
	return p.ID != ""
}

// LoginTarget returns the URL a login flow should open.
func (p SiteProfile) LoginTarget() string {
	if p.LoginURL != "" {
		return p.LoginURL
	}
	return p.BaseURL
}

// SignupTarget returns the URL a signup flow should open.
func (p SiteProfile) SignupTarget() string {
	if p.SignupURL != "" {
		return p.SignupURL
	}
	return p.BaseURL
}

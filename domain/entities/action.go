package entities

// ActionKind represents the type of browser interaction an action performs.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionSearch   ActionKind = "search"
	ActionType     ActionKind = "type"
	ActionSelect   ActionKind = "select"
	ActionClick    ActionKind = "click"
	ActionWait     ActionKind = "wait"
	ActionValidate ActionKind = "validate_page"
	ActionInfo     ActionKind = "info"
	ActionDataNote ActionKind = "generate_data"

	// Synthetic step tags emitted by the engine, never by the compiler.
	ActionStopped       ActionKind = "execution_stopped"
	ActionResultCapture ActionKind = "result_page_capture"
	ActionDataSummary   ActionKind = "data_summary"
)

// ValidationKind selects which phrase sets a validate_page action consults.
type ValidationKind string

const (
	ValidateLogin    ValidationKind = "login"
	ValidateSignup   ValidationKind = "signup"
	ValidateShopping ValidationKind = "shopping"
	ValidateSearch   ValidationKind = "search"
	ValidateGeneric  ValidationKind = "generic"
)

// Action is a single unit of browser interaction produced by the compiler
// and executed by the engine. Immutable once emitted; slice order is the
// execution order.
type Action struct {
	Kind ActionKind `json:"action"`

	// navigate
	URL string `json:"url,omitempty"`

	// search
	Query string `json:"query,omitempty"`

	// type / select / click / search: comma-separated selector hint,
	// tried before the catalog candidates.
	Selector string `json:"selector,omitempty"`

	// click: visible text to match when selectors fail
	MatchText string `json:"text,omitempty"`

	// type / select
	Field     FieldKind `json:"field_type,omitempty"`
	Value     string    `json:"value,omitempty"`
	Generated bool      `json:"is_random_data,omitempty"`

	// wait
	Seconds float64 `json:"seconds,omitempty"`

	// validate_page
	Validation    ValidationKind `json:"type,omitempty"`
	ExpectedText  string         `json:"expected_text,omitempty"`
	MinIndicators int            `json:"min_indicators,omitempty"`

	// info / generate_data
	Message string `json:"message,omitempty"`

	Description string `json:"description,omitempty"`
}

// Soft reports whether a failure of this action records a Failed step but
// does not halt the run.
func (a Action) Soft() bool {
	switch a.Kind {
	case ActionWait, ActionValidate, ActionInfo, ActionDataNote:
		return true
	}
	return false
}

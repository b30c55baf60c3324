package entities

// StepStatus is the outcome classification of one executed action.
type StepStatus string

const (
	StatusPassed  StepStatus = "Passed"
	StatusFailed  StepStatus = "Failed"
	StatusWarning StepStatus = "Warning"
	StatusInfo    StepStatus = "Info"
)

// ExecutionStep is the recorded outcome of attempting one action.
// Created when the action finishes executing and immutable thereafter.
type ExecutionStep struct {
	Step        int        `json:"step"`
	Action      ActionKind `json:"action"`
	Status      StepStatus `json:"status"`
	Details     string     `json:"details"`
	Description string     `json:"description,omitempty"`
	Field       FieldKind  `json:"field_type,omitempty"`

	// Screenshot is the stored record for this step's capture, if any.
	Screenshot *ScreenshotRecord `json:"screenshot,omitempty"`

	DurationSeconds float64 `json:"duration"`

	// Indicators lists the distinct success phrases a validation matched.
	Indicators []string `json:"indicators_found,omitempty"`

	// ResultContent carries extracted page content on validation and
	// result-capture steps.
	ResultContent string `json:"result_content,omitempty"`
}

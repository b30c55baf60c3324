package entities

// DataUsage reports which fields came from the instruction and which were
// synthesized by the random-data generator during a run.
type DataUsage struct {
	Provided  []FieldKind `json:"provided"`
	Generated []FieldKind `json:"generated"`
	Mode      string      `json:"mode"`
}

// ExecutionSummary aggregates per-step outcomes for a run.
type ExecutionSummary struct {
	TotalSteps  int     `json:"total_steps"`
	PassedSteps int     `json:"passed_steps"`
	FailedSteps int     `json:"failed_steps"`
	SuccessRate float64 `json:"success_rate"`
}

// ExecutionResult is what a run hands back across the core boundary:
// the full step trail, the final-page screenshot and a synopsis of the
// page the run landed on.
type ExecutionResult struct {
	ReportID        string           `json:"report_id"`
	Steps           []ExecutionStep  `json:"steps"`
	FinalScreenshot *ScreenshotRecord `json:"final_screenshot,omitempty"`
	ResultSummary   string           `json:"result_summary,omitempty"`
	DataUsage       DataUsage        `json:"data_usage"`
	Summary         ExecutionSummary `json:"summary"`
}

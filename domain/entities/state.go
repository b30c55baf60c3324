package entities

// ExecutionState is the mutable per-run context the engine threads through
// its handlers. One instance exists per run; it is never shared across runs.
type ExecutionState struct {
	CurrentSite            string
	IsSignupFlow           bool
	HasProvidedCredentials bool
	HasGeneratedData       bool
	SearchQuery            string
	IsSearchOperation      bool
	ResultPageContent      string
	ResultSummary          string
}

// Package security keeps sensitive form values out of logs, step details
// and run reports.
package security

import (
	"fmt"
	"sort"
	"strings"

	"qa_automation/domain/entities"
)

const mask = "********"

// MaskValue renders a field value for display, replacing sensitive values
// with a fixed mask. The mask length never leaks the value length.
func MaskValue(kind entities.FieldKind, value string) string {
	if kind.Sensitive() {
		return mask
	}
	return value
}

// DataTracker records which fields a run filled and where the values came
// from. One tracker per run; not safe for concurrent use.
type DataTracker struct {
	provided  map[entities.FieldKind]bool
	generated map[entities.FieldKind]bool
}

func NewDataTracker() *DataTracker {
	return &DataTracker{
		provided:  map[entities.FieldKind]bool{},
		generated: map[entities.FieldKind]bool{},
	}
}

func (t *DataTracker) RecordProvided(kind entities.FieldKind) {
	if kind != "" {
		t.provided[kind] = true
	}
}

func (t *DataTracker) RecordGenerated(kind entities.FieldKind) {
	if kind != "" {
		t.generated[kind] = true
	}
}

// Usage builds the data-provenance section of a run report. The two
// flags report whether the run actually typed provided and generated
// values, as tracked by the engine's state.
func (t *DataTracker) Usage(providedUsed, generatedUsed bool) entities.DataUsage {
	mode := "provided"
	switch {
	case providedUsed && generatedUsed:
		mode = "mixed"
	case generatedUsed:
		mode = "generated"
	}
	return entities.DataUsage{
		Provided:  sortedKinds(t.provided),
		Generated: sortedKinds(t.generated),
		Mode:      mode,
	}
}

// SummaryLine renders a one-line provenance note for the step trail.
// Field names only, never values.
func (t *DataTracker) SummaryLine() string {
	if len(t.provided) == 0 && len(t.generated) == 0 {
		return ""
	}
	var parts []string
	if len(t.provided) > 0 {
		parts = append(parts, fmt.Sprintf("provided: %s", joinKinds(sortedKinds(t.provided))))
	}
	if len(t.generated) > 0 {
		parts = append(parts, fmt.Sprintf("generated: %s", joinKinds(sortedKinds(t.generated))))
	}
	return "form data " + strings.Join(parts, "; ")
}

func sortedKinds(m map[entities.FieldKind]bool) []entities.FieldKind {
	out := make([]entities.FieldKind, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinKinds(kinds []entities.FieldKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

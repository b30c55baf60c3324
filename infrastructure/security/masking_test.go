package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qa_automation/domain/entities"
)

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "********", MaskValue(entities.FieldPassword, "hunter2"))
	assert.Equal(t, "********", MaskValue(entities.FieldPassword, "a-much-longer-password"))
	assert.Equal(t, "bob@test.com", MaskValue(entities.FieldEmail, "bob@test.com"))
	assert.Equal(t, "alice", MaskValue(entities.FieldUsername, "alice"))
}

func TestDataTrackerUsage(t *testing.T) {
	tr := NewDataTracker()
	tr.RecordProvided(entities.FieldEmail)
	tr.RecordGenerated(entities.FieldPassword)
	tr.RecordGenerated(entities.FieldPassword)

	usage := tr.Usage(true, true)
	assert.Equal(t, []entities.FieldKind{entities.FieldEmail}, usage.Provided)
	assert.Equal(t, []entities.FieldKind{entities.FieldPassword}, usage.Generated)
	assert.Equal(t, "mixed", usage.Mode)
}

func TestDataTrackerModes(t *testing.T) {
	assert.Equal(t, "provided", NewDataTracker().Usage(true, false).Mode)
	assert.Equal(t, "provided", NewDataTracker().Usage(false, false).Mode)
	assert.Equal(t, "generated", NewDataTracker().Usage(false, true).Mode)
	assert.Equal(t, "mixed", NewDataTracker().Usage(true, true).Mode)
}

func TestDataTrackerSummaryLine(t *testing.T) {
	tr := NewDataTracker()
	assert.Empty(t, tr.SummaryLine())

	tr.RecordProvided(entities.FieldEmail)
	tr.RecordGenerated(entities.FieldPassword)

	line := tr.SummaryLine()
	assert.Contains(t, line, "provided: email")
	assert.Contains(t, line, "generated: password")
	assert.NotContains(t, line, "hunter")
}

func TestDataTrackerIgnoresEmptyField(t *testing.T) {
	tr := NewDataTracker()
	tr.RecordProvided("")
	tr.RecordGenerated("")
	assert.Empty(t, tr.SummaryLine())
}

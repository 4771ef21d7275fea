package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDutyStatusKnown(t *testing.T) {
	for _, status := range AllDutyStatuses {
		assert.True(t, status.Known(), "status %q should be known", status)
	}
	assert.False(t, DutyStatus("lunch").Known())
	assert.False(t, DutyStatus("").Known())
}

func TestDutyStatusLabel(t *testing.T) {
	assert.Equal(t, "Off Duty", StatusOffDuty.Label())
	assert.Equal(t, "Sleeper Berth", StatusSleeperBerth.Label())
	assert.Equal(t, "Driving", StatusDriving.Label())
	assert.Equal(t, "On Duty", StatusOnDuty.Label())
	assert.Equal(t, UnknownValue, DutyStatus("parked").Label())
}

func TestAllDutyStatusesRowOrder(t *testing.T) {
	// The slice order is the log sheet's top-to-bottom row order and is a
	// rendering contract, not a stylistic choice.
	expected := []DutyStatus{StatusOffDuty, StatusSleeperBerth, StatusDriving, StatusOnDuty}
	assert.Equal(t, expected, AllDutyStatuses)
}

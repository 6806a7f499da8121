package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_FullLifecycle(t *testing.T) {
	// pending -> confirmed -> completed - единственная полная последовательность
	status := StatusPending

	require.True(t, status.CanTransitionTo(StatusConfirmed))
	status = StatusConfirmed

	require.True(t, status.CanTransitionTo(StatusCompleted))
	status = StatusCompleted

	assert.True(t, status.IsTerminal())
	assert.False(t, status.CanTransitionTo(StatusConfirmed))
	assert.False(t, status.CanTransitionTo(StatusPending))
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("in_progress")
	assert.Error(t, err)

	_, err = ParseBookingStatus("")
	assert.Error(t, err)
}

func TestBookingStatus_Meta(t *testing.T) {
	// Каждый статус обязан иметь label и color в таблице отображения
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.NotEmpty(t, status.Label(), "label for %s", status)
		assert.NotEmpty(t, status.Color(), "color for %s", status)
	}
}

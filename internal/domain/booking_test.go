package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_StatusTransitions(t *testing.T) {
	t.Run("confirmed can be cancelled and completed", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed}
		assert.True(t, b.IsConfirmed())
		assert.True(t, b.CanBeCancelled())
		assert.True(t, b.CanBeCompleted())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := &Booking{Status: StatusCancelled}
		assert.False(t, b.IsConfirmed())
		assert.False(t, b.CanBeCancelled())
		assert.False(t, b.CanBeCompleted())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := &Booking{Status: StatusCompleted}
		assert.False(t, b.CanBeCancelled())
		assert.False(t, b.CanBeCompleted())
	})
}

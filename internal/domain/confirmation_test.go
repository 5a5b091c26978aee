package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationNumber(t *testing.T) {
	appointmentDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		number := ConfirmationNumber(appointmentDate, "3f2c8a1e-0000-4b6d-9c21-7d5e12abcdef")
		assert.Equal(t, "AC20260915ABCDEF", number)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := ConfirmationNumber(appointmentDate, "some-booking-id")
		b := ConfirmationNumber(appointmentDate, "some-booking-id")
		assert.Equal(t, a, b)
	})

	t.Run("short id used whole", func(t *testing.T) {
		number := ConfirmationNumber(appointmentDate, "ab12")
		assert.Equal(t, "AC20260915AB12", number)
	})

	t.Run("distinct ids give distinct numbers", func(t *testing.T) {
		a := ConfirmationNumber(appointmentDate, "11111111-aaaa-bbbb-cccc-00000000000a")
		b := ConfirmationNumber(appointmentDate, "11111111-aaaa-bbbb-cccc-00000000000b")
		assert.NotEqual(t, a, b)
	})
}

func TestPriceTable_PriceFor(t *testing.T) {
	table := PriceTable{
		Prices: map[VehicleType]int{
			VehicleCar: 60,
			VehicleBus: 80,
		},
		OnlineDiscount: 5,
	}

	t.Run("base price", func(t *testing.T) {
		price, err := table.PriceFor(VehicleCar, false)
		assert.NoError(t, err)
		assert.Equal(t, 60, price)
	})

	t.Run("online discount", func(t *testing.T) {
		price, err := table.PriceFor(VehicleCar, true)
		assert.NoError(t, err)
		assert.Equal(t, 55, price)
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		_, err := table.PriceFor(VehicleLPG, false)
		assert.Error(t, err)
	})

	t.Run("discount never goes below zero", func(t *testing.T) {
		cheap := PriceTable{Prices: map[VehicleType]int{VehicleCar: 3}, OnlineDiscount: 5}
		price, err := cheap.PriceFor(VehicleCar, true)
		assert.NoError(t, err)
		assert.Equal(t, 0, price)
	})
}

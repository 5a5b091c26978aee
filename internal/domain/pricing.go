package domain

import "fmt"

// PriceTable maps vehicle types to base inspection prices (лв.).
// Prices and the online discount are configuration data, not core logic.
type PriceTable struct {
	Prices         map[VehicleType]int
	OnlineDiscount int
}

// PriceFor computes the final price for a vehicle type.
// Online bookings get the configured discount off the base price.
func (t PriceTable) PriceFor(vt VehicleType, isOnline bool) (int, error) {
	base, ok := t.Prices[vt]
	if !ok {
		return 0, fmt.Errorf("no price configured for vehicle type %q", vt)
	}

	price := base
	if isOnline {
		price -= t.OnlineDiscount
	}
	if price < 0 {
		price = 0
	}

	return price, nil
}

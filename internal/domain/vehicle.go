package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// VehicleType enumerates the vehicle categories accepted for inspection
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleBus        VehicleType = "bus"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleTaxi       VehicleType = "taxi"
	VehicleCaravan    VehicleType = "caravan"
	VehicleTrailer    VehicleType = "trailer"
	VehicleLPG        VehicleType = "lpg"
)

// VehicleTypes lists every accepted vehicle category
var VehicleTypes = []VehicleType{
	VehicleCar,
	VehicleBus,
	VehicleMotorcycle,
	VehicleTaxi,
	VehicleCaravan,
	VehicleTrailer,
	VehicleLPG,
}

// ParseVehicleType validates and converts a raw string into a VehicleType
func ParseVehicleType(s string) (VehicleType, error) {
	vt := VehicleType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range VehicleTypes {
		if vt == known {
			return vt, nil
		}
	}
	return "", fmt.Errorf("unknown vehicle type %q", s)
}

// MaxLicensePlateLength caps a normalized plate
const MaxLicensePlateLength = 12

var (
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]`)
	platePattern    = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)
)

// NormalizeLicensePlate uppercases the plate, strips every non-alphanumeric
// character and enforces the maximum length. "cb 1234 ak" and "CB-1234-AK"
// normalize to the same value.
func NormalizeLicensePlate(plate string) string {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToUpper(strings.TrimSpace(plate)), "")
	if len(normalized) > MaxLicensePlateLength {
		normalized = normalized[:MaxLicensePlateLength]
	}
	return normalized
}

// ValidateLicensePlate checks a normalized plate against the plate format
func ValidateLicensePlate(normalized string) error {
	if !platePattern.MatchString(normalized) {
		return fmt.Errorf("invalid license plate %q", normalized)
	}
	return nil
}

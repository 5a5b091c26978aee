package domain

import (
	"strings"
	"time"
)

// confirmationPrefix is part of the customer-facing contract, do not change
const confirmationPrefix = "AC"

// confirmationSuffixLength characters taken from the end of the booking ID
const confirmationSuffixLength = 6

// ConfirmationNumber builds the customer-facing booking reference:
// "AC" + appointment date as yyyyMMdd + the last 6 characters of the
// booking ID, uppercased. It is deterministic in (date, id) and distinct
// from the primary key.
func ConfirmationNumber(appointmentDate time.Time, bookingID string) string {
	suffix := bookingID
	if len(suffix) > confirmationSuffixLength {
		suffix = suffix[len(suffix)-confirmationSuffixLength:]
	}
	return confirmationPrefix + appointmentDate.Format(CompactDateFormat) + strings.ToUpper(suffix)
}

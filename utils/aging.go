package utils

import (
	"fmt"
	"time"

	"bookingtrack/models"
)

// Aging is the number of whole UTC calendar days a booking has been open.
// Both timestamps are truncated to their UTC date before subtracting, so a
// booking created late at night does not lose or gain a day from the
// time-of-day component. Closed bookings always age zero.
func Aging(createdAt time.Time, bookingStatus string, now time.Time) int {
	if models.BookingStatusRank(bookingStatus) >= 2 {
		return 0
	}
	c := createdAt.UTC()
	n := now.UTC()
	createdDate := time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, time.UTC)
	nowDate := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	days := int(nowDate.Sub(createdDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ReceivedPercentage formats received/total as a percentage string with two
// decimals and a literal percent sign, e.g. "42.00%". A zero total yields
// "0.00%".
func ReceivedPercentage(received, total int) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(received)/float64(total)*100)
}

// DerivePOStatus maps a PO's received/ordered aggregate onto its status:
// completed when everything ordered has arrived, partial once anything has,
// otherwise the empty status the PO was created with.
func DerivePOStatus(totalReceived, totalQty int) string {
	switch {
	case totalQty > 0 && totalReceived == totalQty:
		return models.POStatusCompleted
	case totalReceived > 0:
		return models.POStatusPartial
	default:
		return ""
	}
}

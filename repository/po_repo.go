package repository

import "bookingtrack/models"

// PORepository is the booking_po read/maintenance surface. Receipt-driven
// aggregate updates go through BookingRepository instead.
type PORepository interface {
	ListPOs() ([]*models.BookingPO, error)
	GetPOByID(id int64) (*models.BookingPO, error)
	UpdatePO(id int64, patch models.POPatch) error
	DeletePO(id int64) error
}

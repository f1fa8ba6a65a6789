package repository

import (
	"time"

	"bookingtrack/models"
)

// BookingRepository covers the booking lifecycle and receipt reconciliation.
// Every mutation that spans bookings/booking_items/booking_po commits as a
// single transaction.
type BookingRepository interface {
	CreateBookingWithItems(booking *models.Booking, items []models.NewBookingItemInput) (int64, error)
	GetBookings(search string, page, limit int) (*models.BookingPage, error)
	GetBookingByID(id int64) (*models.BookingSummary, error)
	UpdateBookingFields(id int64, patch models.BookingPatch, actor string) error
	SoftDeleteBooking(id int64, reason, actor string) error

	AssignPurchaseOrders(bookingID int64, poNumbers []string, actor string) (int, error)
	AssignItemsToPO(bookingID int64, itemIDs []int64, poNumber, actor string) (int, error)
	RecordReceipt(bookingID, itemID int64, poNumber *string, totalReceived int, actor string) (*models.ReceiptResult, error)

	// OpenBookings feeds the notification generator and the sheet sync.
	OpenBookings() ([]*models.BookingSummary, error)
	ExportRows() ([]models.ExportRow, error)

	UpdatePDFInfo(id int64, path string, createdAt time.Time) error
}

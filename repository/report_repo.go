package repository

import (
	"bookingtrack/models"
)

// ReportRepository provides the read projections behind the PDF and
// spreadsheet exports.
type ReportRepository struct {
	BookingRepo BookingRepository
}

// NewReportRepository initializes a report repository
func NewReportRepository(bookingRepo BookingRepository) *ReportRepository {
	return &ReportRepository{BookingRepo: bookingRepo}
}

// GetBookingForPDF fetches a single booking with its items and POs for PDF
func (r *ReportRepository) GetBookingForPDF(id int64) (*models.BookingSummary, error) {
	return r.BookingRepo.GetBookingByID(id)
}

// GetExportRows fetches the flattened booking-items join for the spreadsheet
func (r *ReportRepository) GetExportRows() ([]models.ExportRow, error) {
	return r.BookingRepo.ExportRows()
}

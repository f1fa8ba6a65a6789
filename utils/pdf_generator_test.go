package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingtrack/models"
)

func TestBuildBookingHTML(t *testing.T) {
	uoi := "EA"
	po := "PO-100"
	booking := &models.BookingSummary{
		Booking: models.Booking{
			ID:            7,
			Description:   "pump spares",
			CnNo:          "CN-001",
			BookingStatus: models.BookingStatusPartial,
			CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Items: []models.BookingItem{
				{
					ID:                 1,
					ItemQty:            5,
					TotalReceivedItems: 2,
					PoNumber:           &po,
					Item:               &models.Item{StockCode: "STK-42", ItemName: "Impeller", Uoi: &uoi},
				},
			},
		},
		PoDetails:          []models.PODetail{{PoNumber: "PO-100", Status: models.POStatusPartial}},
		TotalQtyItems:      5,
		TotalReceivedItems: 2,
		Aging:              12,
		ReceivedPercentage: "40.00%",
	}

	html, err := buildBookingHTML(booking, "../templates/booking_template.html")
	require.NoError(t, err)

	assert.Contains(t, html, "BOOKSM7")
	assert.Contains(t, html, "01-Mar-2026")
	assert.Contains(t, html, "pump spares")
	assert.Contains(t, html, "CN-001")
	assert.Contains(t, html, "PO-100")
	assert.Contains(t, html, "STK-42")
	assert.Contains(t, html, "Impeller")
	assert.Contains(t, html, "40.00%")
	assert.Contains(t, html, "page-break-inside: avoid")
}

func TestBuildBookingHTMLZeroDate(t *testing.T) {
	booking := &models.BookingSummary{
		Booking: models.Booking{ID: 9, Description: "x", CnNo: "CN-9"},
	}

	html, err := buildBookingHTML(booking, "../templates/booking_template.html")
	require.NoError(t, err)
	assert.Contains(t, html, "<b>Date:</b> -")
}

func TestGenerateBookingPDFNilBooking(t *testing.T) {
	pdf, err := GenerateBookingPDF(nil)
	require.NoError(t, err)
	assert.Nil(t, pdf)
}

package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"bookingtrack/repository"
	"bookingtrack/utils"
)

type PDFHandler struct {
	Repo *repository.ReportRepository
}

// BookingPDF generates a booking summary PDF, uploads it to R2 and records
// the public URL on the booking.
func (h *PDFHandler) BookingPDF(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid booking ID"})
		return
	}

	booking, err := h.Repo.GetBookingForPDF(bookingID)
	if err != nil {
		writeError(w, err)
		return
	}

	pdfBytes, err := utils.GenerateBookingPDF(booking)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(pdfBytes) == 0 {
		writeJSON(w, http.StatusNotFound, ApiResponse{Success: false, Message: "booking not found"})
		return
	}

	filename := fmt.Sprintf("booking_%d_%d.pdf", bookingID, time.Now().Unix())
	fileURL, err := utils.UploadToR2(pdfBytes, filename, "application/pdf")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Repo.BookingRepo.UpdatePDFInfo(bookingID, fileURL, time.Now()); err != nil {
		// Log but don't block the response; the file is already uploaded
		log.Printf("failed to update pdf info for booking %d: %v", bookingID, err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Booking PDF generated successfully",
		Data:    map[string]string{"file": filename, "url": fileURL},
	})
}

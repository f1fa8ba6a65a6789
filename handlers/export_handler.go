package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"bookingtrack/repository"
	"bookingtrack/utils"
)

type ExportHandler struct {
	Repo *repository.ReportRepository
}

// ExportBookings streams the booking-items join as an xlsx download.
func (h *ExportHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.GetExportRows()
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := utils.BuildBookingWorkbook(rows)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=bookings.xlsx")
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write file", http.StatusInternalServerError)
	}
}

// UpdateSheet builds the workbook and pushes it to R2 so the shared tracking
// sheet can pick it up.
func (h *ExportHandler) UpdateSheet(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Repo.GetExportRows()
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := utils.BuildBookingWorkbook(rows)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("bookings_%d.xlsx", time.Now().Unix())
	fileURL, err := utils.UploadToR2(buf.Bytes(), filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Sheet updated successfully",
		Data:    map[string]interface{}{"url": fileURL, "rowCount": len(rows)},
	})
}

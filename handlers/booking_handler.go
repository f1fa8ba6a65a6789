package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookingtrack/models"
	"bookingtrack/repository"
)

type BookingHandler struct {
	Repo repository.BookingRepository
}

// CreateBooking handler
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string                       `json:"description"`
		CnNo        string                       `json:"cn_no"`
		RequestedBy *string                      `json:"requested_by,omitempty"`
		Items       []models.NewBookingItemInput `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	booking := &models.Booking{
		Description: req.Description,
		CnNo:        req.CnNo,
		RequestedBy: req.RequestedBy,
		CreatedBy:   actor(r),
	}
	id, err := h.Repo.CreateBookingWithItems(booking, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Booking created successfully",
		Data:    map[string]int64{"id": id},
	})
}

// GetBookings handler: paginated, searchable listing
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.Repo.GetBookings(q.Get("search"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetBookingByID handler
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid booking ID"})
		return
	}

	booking, err := h.Repo.GetBookingByID(bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// UpdateBooking handler: patches only the fields present in the request
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid booking ID"})
		return
	}

	var patch models.BookingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.UpdateBookingFields(bookingID, patch, actor(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking updated successfully"})
}

// SoftDeleteBooking handler: marks the booking and its items/POs removed
func (h *BookingHandler) SoftDeleteBooking(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid booking ID"})
		return
	}

	var req struct {
		RemoveReason string `json:"remove_reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.SoftDeleteBooking(bookingID, req.RemoveReason, actor(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking deleted successfully"})
}

// AssignPurchaseOrders handler
func (h *BookingHandler) AssignPurchaseOrders(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid booking ID"})
		return
	}

	var req struct {
		PoNumbers []string `json:"po_numbers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "PO Numbers must be an array"})
		return
	}

	inserted, err := h.Repo.AssignPurchaseOrders(bookingID, req.PoNumbers, actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "PO Numbers inserted successfully",
		Data:    map[string]int{"insertedCount": inserted},
	})
}

// AssignItemsToPO handler
func (h *BookingHandler) AssignItemsToPO(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID int64   `json:"booking_id"`
		ItemIDs   []int64 `json:"item_ids"`
		PoNumber  string  `json:"po_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	totalQty, err := h.Repo.AssignItemsToPO(req.BookingID, req.ItemIDs, req.PoNumber, actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "PO Items updated successfully",
		Data:    map[string]int{"total_qty_items": totalQty},
	})
}

// RecordReceipt handler
func (h *BookingHandler) RecordReceipt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID          int64   `json:"booking_id"`
		ItemID             int64   `json:"item_id"`
		PoNumber           *string `json:"po_number,omitempty"`
		TotalReceivedItems int     `json:"total_received_items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	result, err := h.Repo.RecordReceipt(req.BookingID, req.ItemID, req.PoNumber, req.TotalReceivedItems, actor(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Received items updated successfully",
		Data:    result,
	})
}

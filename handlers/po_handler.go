package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookingtrack/models"
	"bookingtrack/repository"
)

type POHandler struct {
	Repo repository.PORepository
}

// ListPOs handler
func (h *POHandler) ListPOs(w http.ResponseWriter, r *http.Request) {
	pos, err := h.Repo.ListPOs()
	if err != nil {
		writeError(w, err)
		return
	}
	if pos == nil {
		pos = []*models.BookingPO{}
	}
	writeJSON(w, http.StatusOK, pos)
}

// GetPOByID handler
func (h *POHandler) GetPOByID(w http.ResponseWriter, r *http.Request, id string) {
	poID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid PO ID"})
		return
	}

	po, err := h.Repo.GetPOByID(poID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, po)
}

// UpdatePO handler: patches only the fields present in the request
func (h *POHandler) UpdatePO(w http.ResponseWriter, r *http.Request, id string) {
	poID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid PO ID"})
		return
	}

	var patch models.POPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if err := h.Repo.UpdatePO(poID, patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "PO Number updated successfully"})
}

// DeletePO handler
func (h *POHandler) DeletePO(w http.ResponseWriter, r *http.Request, id string) {
	poID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid PO ID"})
		return
	}

	if err := h.Repo.DeletePO(poID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "PO Number deleted successfully"})
}

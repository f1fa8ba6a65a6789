package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookingtrack/models"
	"bookingtrack/repository"
)

type ItemHandler struct {
	Repo repository.ItemRepository
}

// CreateItem handler
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if claims := UserFrom(r.Context()); claims != nil {
		item.CreatedBy = &claims.UserID
	}

	if err := h.Repo.CreateItem(&item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Item created successfully",
		Data:    map[string]int64{"itemId": item.ID},
	})
}

// GetItems handler
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.GetItems()
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []*models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// GetItemByID handler
func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid item ID"})
		return
	}

	item, err := h.Repo.GetItemByID(itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItem handler
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid item ID"})
		return
	}

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	item.ID = itemID

	if err := h.Repo.UpdateItem(&item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Item updated successfully"})
}

// DeleteItem handler
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid item ID"})
		return
	}

	if err := h.Repo.DeleteItem(itemID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Item deleted successfully"})
}

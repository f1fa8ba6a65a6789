package handlers

import (
	"encoding/json"
	"net/http"

	"bookingtrack/models"
	"bookingtrack/repository"
)

type UserHandler struct {
	Repo repository.UserRepository
}

// GetUsers handler
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.GetUsers()
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUserByID handler
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request, id string) {
	user, err := h.Repo.GetUserByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	user.Password = "" // hide password hash
	writeJSON(w, http.StatusOK, user)
}

// CreateUser handler
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}

	if claims := UserFrom(r.Context()); claims != nil {
		user.CreatedBy = &claims.UserID
	}

	if err := h.Repo.CreateUser(&user); err != nil {
		writeError(w, err)
		return
	}

	user.Password = "" // hide password
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// UpdateUser handler
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request, id string) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{Success: false, Message: "Invalid request payload: " + err.Error()})
		return
	}
	user.ID = id

	if err := h.Repo.UpdateUser(&user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "User updated successfully"})
}

// DeleteUser handler
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.DeleteUser(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "User deleted successfully"})
}

package handlers

import (
	"net/http"

	"bookingtrack/models"
	"bookingtrack/repository"
)

type NotificationHandler struct {
	Repo        repository.NotificationRepository
	BookingRepo repository.BookingRepository
	UserRepo    repository.UserRepository
}

// GetNotifications handler: notifications of the authenticated user
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	claims := UserFrom(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, ApiResponse{Success: false, Message: "Access denied. No token provided."})
		return
	}

	notifs, err := h.Repo.GetNotifications(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if notifs == nil {
		notifs = []*models.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": notifs})
}

// MarkRead handler
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.Repo.MarkRead(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Notification marked as read"})
}

// Generate handler: one notification per user for every open booking
func (h *NotificationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.BookingRepo.OpenBookings()
	if err != nil {
		writeError(w, err)
		return
	}
	if len(bookings) == 0 {
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "There are no open bookings to notify"})
		return
	}

	users, err := h.UserRepo.GetUsers()
	if err != nil {
		writeError(w, err)
		return
	}

	var notifs []*models.Notification
	for _, user := range users {
		for _, booking := range bookings {
			notifs = append(notifs, &models.Notification{
				UserID:    user.ID,
				Message:   "Booking " + models.BookingReference(booking.ID) + " is currently still open",
				BookingID: booking.ID,
			})
		}
	}

	inserted, err := h.Repo.InsertNotifications(notifs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Notifications generated for all users",
		Data:    map[string]int{"insertedCount": inserted},
	})
}

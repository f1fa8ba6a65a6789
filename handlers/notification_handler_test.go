package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingtrack/auth"
	"bookingtrack/models"
)

func testClaims(userID string) *auth.Claims {
	return &auth.Claims{UserID: userID}
}

type fakeNotificationRepo struct {
	inserted []*models.Notification
	byUser   map[string][]*models.Notification
}

func (f *fakeNotificationRepo) GetNotifications(userID string) ([]*models.Notification, error) {
	return f.byUser[userID], nil
}

func (f *fakeNotificationRepo) MarkRead(id string) error { return nil }

func (f *fakeNotificationRepo) InsertNotifications(notifs []*models.Notification) (int, error) {
	f.inserted = append(f.inserted, notifs...)
	return len(notifs), nil
}

func TestGenerateNotifications(t *testing.T) {
	t.Run("fans out one notification per user per open booking", func(t *testing.T) {
		notifRepo := &fakeNotificationRepo{}
		bookingRepo := &fakeBookingRepo{
			openFn: func() ([]*models.BookingSummary, error) {
				return []*models.BookingSummary{
					{Booking: models.Booking{ID: 1, BookingStatus: models.BookingStatusOpen}},
					{Booking: models.Booking{ID: 2, BookingStatus: models.BookingStatusOpen}},
				}, nil
			},
		}
		userRepo := &fakeUserRepo{users: map[string]*models.User{
			"a@example.com": {ID: "u-a", Email: "a@example.com"},
			"b@example.com": {ID: "u-b", Email: "b@example.com"},
		}}

		h := &NotificationHandler{Repo: notifRepo, BookingRepo: bookingRepo, UserRepo: userRepo}

		req := httptest.NewRequest(http.MethodPost, "/notifications/generate", nil)
		rec := httptest.NewRecorder()

		h.Generate(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, notifRepo.inserted, 4) // 2 users x 2 open bookings

		messages := make(map[string]bool)
		for _, n := range notifRepo.inserted {
			messages[n.Message] = true
		}
		assert.True(t, messages["Booking BOOKSM1 is currently still open"])
		assert.True(t, messages["Booking BOOKSM2 is currently still open"])

		var resp ApiResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, float64(4), resp.Data.(map[string]interface{})["insertedCount"])
	})

	t.Run("no open bookings inserts nothing", func(t *testing.T) {
		notifRepo := &fakeNotificationRepo{}
		h := &NotificationHandler{
			Repo:        notifRepo,
			BookingRepo: &fakeBookingRepo{},
			UserRepo:    &fakeUserRepo{},
		}

		req := httptest.NewRequest(http.MethodPost, "/notifications/generate", nil)
		rec := httptest.NewRecorder()

		h.Generate(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, notifRepo.inserted)
	})
}

func TestGetNotifications(t *testing.T) {
	t.Run("lists only the authenticated user's notifications", func(t *testing.T) {
		notifRepo := &fakeNotificationRepo{byUser: map[string][]*models.Notification{
			"u-a": {{ID: "1", UserID: "u-a", Message: "Booking BOOKSM1 is currently still open"}},
		}}
		h := &NotificationHandler{Repo: notifRepo}

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		req = req.WithContext(WithUser(req.Context(), testClaims("u-a")))
		rec := httptest.NewRecorder()

		h.GetNotifications(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "BOOKSM1")
	})

	t.Run("requires authentication", func(t *testing.T) {
		h := &NotificationHandler{Repo: &fakeNotificationRepo{}}

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		rec := httptest.NewRecorder()

		h.GetNotifications(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

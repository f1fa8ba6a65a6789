package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingtrack/auth"
	"bookingtrack/handlers"
	"bookingtrack/models"
	"bookingtrack/repository"
)

type stubBookingRepo struct{}

func (stubBookingRepo) CreateBookingWithItems(b *models.Booking, items []models.NewBookingItemInput) (int64, error) {
	return 1, nil
}

func (stubBookingRepo) GetBookings(search string, page, limit int) (*models.BookingPage, error) {
	return &models.BookingPage{Data: []*models.BookingSummary{}}, nil
}

func (stubBookingRepo) GetBookingByID(id int64) (*models.BookingSummary, error) {
	return &models.BookingSummary{Booking: models.Booking{ID: id}}, nil
}

func (stubBookingRepo) UpdateBookingFields(id int64, patch models.BookingPatch, actor string) error {
	return nil
}

func (stubBookingRepo) SoftDeleteBooking(id int64, reason, actor string) error { return nil }

func (stubBookingRepo) AssignPurchaseOrders(bookingID int64, poNumbers []string, actor string) (int, error) {
	return len(poNumbers), nil
}

func (stubBookingRepo) AssignItemsToPO(bookingID int64, itemIDs []int64, poNumber, actor string) (int, error) {
	return 0, nil
}

func (stubBookingRepo) RecordReceipt(bookingID, itemID int64, poNumber *string, totalReceived int, actor string) (*models.ReceiptResult, error) {
	return &models.ReceiptResult{}, nil
}

func (stubBookingRepo) OpenBookings() ([]*models.BookingSummary, error) { return nil, nil }
func (stubBookingRepo) ExportRows() ([]models.ExportRow, error)         { return nil, nil }
func (stubBookingRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	return nil
}

type stubUserRepo struct{}

func (stubUserRepo) CreateUser(user *models.User) error                { return nil }
func (stubUserRepo) GetUserByEmail(email string) (*models.User, error) { return nil, nil }
func (stubUserRepo) GetUsers() ([]*models.User, error)                 { return nil, nil }
func (stubUserRepo) GetUserByID(id string) (*models.User, error)       { return &models.User{ID: id}, nil }
func (stubUserRepo) UpdateUser(user *models.User) error                { return nil }
func (stubUserRepo) DeleteUser(id string) error                        { return nil }

type stubNotificationRepo struct{}

func (stubNotificationRepo) GetNotifications(userID string) ([]*models.Notification, error) {
	return nil, nil
}
func (stubNotificationRepo) MarkRead(id string) error { return nil }
func (stubNotificationRepo) InsertNotifications(notifs []*models.Notification) (int, error) {
	return len(notifs), nil
}

type stubPORepo struct{}

func (stubPORepo) ListPOs() ([]*models.BookingPO, error) { return nil, nil }
func (stubPORepo) GetPOByID(id int64) (*models.BookingPO, error) {
	return &models.BookingPO{ID: id}, nil
}
func (stubPORepo) UpdatePO(id int64, patch models.POPatch) error { return nil }
func (stubPORepo) DeletePO(id int64) error                       { return nil }

type stubItemRepo struct{}

func (stubItemRepo) CreateItem(item *models.Item) error        { return nil }
func (stubItemRepo) GetItems() ([]*models.Item, error)         { return nil, nil }
func (stubItemRepo) GetItemByID(id int64) (*models.Item, error) { return &models.Item{ID: id}, nil }
func (stubItemRepo) UpdateItem(item *models.Item) error        { return nil }
func (stubItemRepo) DeleteItem(id int64) error                 { return nil }

// SetupRoutes registers on the default mux, so all route tests share one
// registration.
func TestRoutes(t *testing.T) {
	jwtSvc := auth.NewJWTService("route-test-secret", "")
	reportRepo := repository.NewReportRepository(stubBookingRepo{})

	SetupRoutes(
		jwtSvc,
		&handlers.AuthHandler{Repo: stubUserRepo{}, JWT: jwtSvc},
		&handlers.BookingHandler{Repo: stubBookingRepo{}},
		&handlers.POHandler{Repo: stubPORepo{}},
		&handlers.ItemHandler{Repo: stubItemRepo{}},
		&handlers.UserHandler{Repo: stubUserRepo{}},
		&handlers.NotificationHandler{Repo: stubNotificationRepo{}, BookingRepo: stubBookingRepo{}, UserRepo: stubUserRepo{}},
		&handlers.PDFHandler{Repo: reportRepo},
		&handlers.ExportHandler{Repo: reportRepo},
	)

	pair, err := jwtSvc.GenerateTokenPair("u-1", "user@example.com", "staff")
	require.NoError(t, err)

	do := func(method, path, body string, authed bool) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		if authed {
			req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		}
		rec := httptest.NewRecorder()
		http.DefaultServeMux.ServeHTTP(rec, req)
		return rec
	}

	t.Run("po assignment accepts POST and PUT", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut} {
			rec := do(method, "/bookings/5/po", `{"po_numbers":["PO-1"]}`, true)
			assert.Equal(t, http.StatusCreated, rec.Code, method)
		}
	})

	t.Run("soft delete accepts POST and PUT", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut} {
			rec := do(method, "/bookings/5/delete", `{"remove_reason":"duplicate"}`, true)
			assert.Equal(t, http.StatusOK, rec.Code, method)
		}
	})

	t.Run("sub-routes still refuse reads", func(t *testing.T) {
		rec := do(http.MethodGet, "/bookings/5/delete", "", true)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		rec = do(http.MethodGet, "/bookings/5/po", "", true)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("protected routes require a bearer token", func(t *testing.T) {
		rec := do(http.MethodGet, "/bookings", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("booking detail resolves through the id segment", func(t *testing.T) {
		rec := do(http.MethodGet, "/bookings/5", "", true)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

package routes

import (
	"net/http"
	"strings"

	"bookingtrack/auth"
	"bookingtrack/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withAuth verifies the bearer token and attaches the claims to the request
// context. Requests without a valid access token are rejected.
func withAuth(jwtSvc *auth.JWTService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, `{"success":false,"message":"Access denied. No token provided."}`, http.StatusUnauthorized)
			return
		}

		claims, err := jwtSvc.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, `{"success":false,"message":"Invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(handlers.WithUser(r.Context(), claims)))
	}
}

func SetupRoutes(
	jwtSvc *auth.JWTService,
	authHandler *handlers.AuthHandler,
	bookingHandler *handlers.BookingHandler,
	poHandler *handlers.POHandler,
	itemHandler *handlers.ItemHandler,
	userHandler *handlers.UserHandler,
	notificationHandler *handlers.NotificationHandler,
	pdfHandler *handlers.PDFHandler,
	exportHandler *handlers.ExportHandler,
) {
	// Auth routes (public)
	http.Handle("/auth/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(authHandler.Signup))))
	http.Handle("/auth/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(authHandler.Login))))
	http.Handle("/auth/refresh", withCORS(http.HandlerFunc(handlers.RecoverWrapper(authHandler.Refresh))))
	http.Handle("/auth/logout", withCORS(http.HandlerFunc(handlers.RecoverWrapper(authHandler.Logout))))

	protected := func(h http.HandlerFunc) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(withAuth(jwtSvc, h))))
	}

	// Booking routes
	http.Handle("/bookings", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			bookingHandler.CreateBooking(w, r)
		case http.MethodGet:
			bookingHandler.GetBookings(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/bookings/export", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		exportHandler.ExportBookings(w, r)
	}))

	// Booking sub-routes: /bookings/{id}, /bookings/{id}/po,
	// /bookings/{id}/delete, /bookings/{id}/pdf
	http.Handle("/bookings/", protected(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/bookings/")
		id, action, _ := strings.Cut(rest, "/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch action {
		case "":
			switch r.Method {
			case http.MethodGet:
				bookingHandler.GetBookingByID(w, r, id)
			case http.MethodPatch, http.MethodPut:
				bookingHandler.UpdateBooking(w, r, id)
			default:
				w.WriteHeader(http.StatusMethodNotAllowed)
			}
		case "po":
			if r.Method != http.MethodPost && r.Method != http.MethodPut {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			bookingHandler.AssignPurchaseOrders(w, r, id)
		case "delete":
			if r.Method != http.MethodPost && r.Method != http.MethodPut {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			bookingHandler.SoftDeleteBooking(w, r, id)
		case "pdf":
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			pdfHandler.BookingPDF(w, r, id)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	// PO routes
	http.Handle("/pos", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		poHandler.ListPOs(w, r)
	}))

	http.Handle("/pos/items", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch && r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		bookingHandler.AssignItemsToPO(w, r)
	}))

	http.Handle("/pos/", protected(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/pos/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			poHandler.GetPOByID(w, r, id)
		case http.MethodPatch, http.MethodPut:
			poHandler.UpdatePO(w, r, id)
		case http.MethodDelete:
			poHandler.DeletePO(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Item routes
	http.Handle("/items", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			itemHandler.CreateItem(w, r)
		case http.MethodGet:
			itemHandler.GetItems(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/items/update-received-items", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch && r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		bookingHandler.RecordReceipt(w, r)
	}))

	http.Handle("/items/", protected(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/items/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			itemHandler.GetItemByID(w, r, id)
		case http.MethodPatch, http.MethodPut:
			itemHandler.UpdateItem(w, r, id)
		case http.MethodDelete:
			itemHandler.DeleteItem(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// User routes
	http.Handle("/users", protected(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			userHandler.CreateUser(w, r)
		case http.MethodGet:
			userHandler.GetUsers(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	http.Handle("/users/", protected(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/users/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			userHandler.GetUserByID(w, r, id)
		case http.MethodPatch, http.MethodPut:
			userHandler.UpdateUser(w, r, id)
		case http.MethodDelete:
			userHandler.DeleteUser(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Notification routes
	http.Handle("/notifications", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		notificationHandler.GetNotifications(w, r)
	}))

	http.Handle("/notifications/generate", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		notificationHandler.Generate(w, r)
	}))

	http.Handle("/notifications/", protected(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/notifications/")
		id, action, _ := strings.Cut(rest, "/")
		if id == "" || action != "read" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPatch && r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		notificationHandler.MarkRead(w, r, id)
	}))

	// Sheet sync trigger
	http.Handle("/sheets/update", protected(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		exportHandler.UpdateSheet(w, r)
	}))
}

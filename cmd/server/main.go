package main

import (
	"fmt"
	"net/http"

	"bookingtrack/auth"
	"bookingtrack/config"
	"bookingtrack/db"
	"bookingtrack/db/mongo"
	"bookingtrack/db/postgres"
	"bookingtrack/handlers"
	"bookingtrack/repository"
	"bookingtrack/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	// Run migrations
	db.RunMigrations(cfg.PostgresURL)

	// Store handles share one lifecycle contract
	var stores []db.DB
	open := func(s db.DB) {
		if err := s.Connect(); err != nil {
			panic(err)
		}
		stores = append(stores, s)
	}
	defer func() {
		for _, s := range stores {
			s.Disconnect()
		}
	}()

	pg := postgres.NewPostgresDB(cfg.PostgresURL)
	open(pg)

	bookingRepo := repository.NewPostgresBookingRepo(pg.Conn)
	poRepo := repository.NewPostgresPORepo(pg.Conn)
	itemRepo := repository.NewPostgresItemRepo(pg.Conn)
	userRepo := repository.NewPostgresUserRepo(pg.Conn)

	// Notifications can live in Postgres or Mongo
	var notifRepo repository.NotificationRepository
	switch db.StoreType(cfg.NotifStore) {
	case db.Postgres:
		notifRepo = repository.NewPostgresNotificationRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDB)
		open(mg)

		notifRepo = repository.NewMongoNotificationRepo(mg.Database())

	default:
		panic("NOTIF_STORE not supported")
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTRefreshSecret)

	// Handlers
	authHandler := &handlers.AuthHandler{Repo: userRepo, JWT: jwtSvc}
	bookingHandler := &handlers.BookingHandler{Repo: bookingRepo}
	poHandler := &handlers.POHandler{Repo: poRepo}
	itemHandler := &handlers.ItemHandler{Repo: itemRepo}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	notificationHandler := &handlers.NotificationHandler{
		Repo:        notifRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
	}

	// Report handlers share the read projections
	reportRepo := repository.NewReportRepository(bookingRepo)
	pdfHandler := &handlers.PDFHandler{Repo: reportRepo}
	exportHandler := &handlers.ExportHandler{Repo: reportRepo}

	routes.SetupRoutes(jwtSvc, authHandler, bookingHandler, poHandler,
		itemHandler, userHandler, notificationHandler, pdfHandler, exportHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}

package db

// StoreType selects the backing store for the notification repository.
// Bookings always live in Postgres; reconciliation needs real transactions.
type StoreType string

const (
	Postgres StoreType = "postgres"
	Mongo    StoreType = "mongo"
)

// DB is the lifecycle contract shared by the store handles main manages.
type DB interface {
	Connect() error
	Disconnect() error
}

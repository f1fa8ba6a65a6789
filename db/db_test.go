package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookingtrack/db"
	"bookingtrack/db/mongo"
	"bookingtrack/db/postgres"
)

// both store handles satisfy the lifecycle contract main manages
var (
	_ db.DB = (*postgres.PostgresDB)(nil)
	_ db.DB = (*mongo.MongoDB)(nil)
)

func TestNewPostgresDB(t *testing.T) {
	pg := postgres.NewPostgresDB("postgres://localhost/app")
	assert.Equal(t, "postgres://localhost/app", pg.URL)
	assert.NotNil(t, pg.Ctx)
}

func TestNewMongoDB(t *testing.T) {
	mg := mongo.NewMongoDB("mongodb://localhost:27017", "appdb")
	assert.Equal(t, "mongodb://localhost:27017", mg.URL)
	assert.Equal(t, "appdb", mg.DBName)
}

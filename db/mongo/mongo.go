package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client *mongo.Client
	DBName string
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewMongoDB(url, dbName string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
		DBName: dbName,
	}
}

func (m *MongoDB) Connect() error {
	opts := options.Client().
		ApplyURI(m.URL).
		SetMaxPoolSize(10).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(m.Ctx, opts)
	if err != nil {
		return err
	}
	m.Client = client
	return m.Client.Ping(m.Ctx, nil)
}

func (m *MongoDB) Disconnect() error {
	m.Cancel()
	return m.Client.Disconnect(m.Ctx)
}

// Database returns the configured application database.
func (m *MongoDB) Database() *mongo.Database {
	return m.Client.Database(m.DBName)
}

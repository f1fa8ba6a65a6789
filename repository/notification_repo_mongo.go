package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookingtrack/apperr"
	"bookingtrack/models"
)

type MongoNotificationRepo struct {
	DB *mongo.Database
}

func NewMongoNotificationRepo(db *mongo.Database) *MongoNotificationRepo {
	return &MongoNotificationRepo{DB: db}
}

func (r *MongoNotificationRepo) collection() *mongo.Collection {
	return r.DB.Collection("notifications")
}

func (r *MongoNotificationRepo) GetNotifications(userID string) ([]*models.Notification, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer cur.Close(ctx)

	var result []*models.Notification
	for cur.Next(ctx) {
		var doc struct {
			ID        primitive.ObjectID `bson:"_id"`
			UserID    string             `bson:"user_id"`
			Message   string             `bson:"message"`
			BookingID int64              `bson:"booking_id"`
			IsRead    bool               `bson:"is_read"`
			CreatedAt time.Time          `bson:"created_at"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, apperr.Storage(err)
		}
		result = append(result, &models.Notification{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			Message:   doc.Message,
			BookingID: doc.BookingID,
			IsRead:    doc.IsRead,
			CreatedAt: doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

func (r *MongoNotificationRepo) MarkRead(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validationf("invalid notification id %q", id)
	}

	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return apperr.Storage(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("notification %s not found", id)
	}
	return nil
}

func (r *MongoNotificationRepo) InsertNotifications(notifs []*models.Notification) (int, error) {
	if len(notifs) == 0 {
		return 0, nil
	}

	createdAt := time.Now().UTC()
	docs := make([]interface{}, 0, len(notifs))
	for _, n := range notifs {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = createdAt
		}
		docs = append(docs, bson.M{
			"user_id":    n.UserID,
			"message":    n.Message,
			"booking_id": n.BookingID,
			"is_read":    false,
			"created_at": n.CreatedAt,
		})
	}

	res, err := r.collection().InsertMany(context.Background(), docs)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	return len(res.InsertedIDs), nil
}

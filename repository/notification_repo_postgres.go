package repository

import (
	"database/sql"
	"strconv"
	"time"

	"bookingtrack/apperr"
	"bookingtrack/models"
)

type PostgresNotificationRepo struct {
	DB *sql.DB
}

func NewPostgresNotificationRepo(db *sql.DB) *PostgresNotificationRepo {
	return &PostgresNotificationRepo{DB: db}
}

func (r *PostgresNotificationRepo) GetNotifications(userID string) ([]*models.Notification, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, message, booking_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var result []*models.Notification
	for rows.Next() {
		var n models.Notification
		var id int64
		err := rows.Scan(&id, &n.UserID, &n.Message, &n.BookingID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		n.ID = strconv.FormatInt(id, 10)
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

func (r *PostgresNotificationRepo) MarkRead(id string) error {
	notifID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return apperr.Validationf("invalid notification id %q", id)
	}

	res, err := r.DB.Exec(`UPDATE notifications SET is_read = TRUE WHERE id = $1`, notifID)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("notification %s not found", id)
	}
	return nil
}

func (r *PostgresNotificationRepo) InsertNotifications(notifs []*models.Notification) (int, error) {
	if len(notifs) == 0 {
		return 0, nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC()
	inserted := 0
	for _, n := range notifs {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = createdAt
		}
		_, err := tx.Exec(`
			INSERT INTO notifications(user_id, message, booking_id, created_at)
			VALUES($1,$2,$3,$4)
		`, n.UserID, n.Message, n.BookingID, n.CreatedAt)
		if err != nil {
			return 0, apperr.Storage(err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage(err)
	}
	return inserted, nil
}

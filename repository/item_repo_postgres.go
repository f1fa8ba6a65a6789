package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"

	"bookingtrack/apperr"
	"bookingtrack/models"
)

type PostgresItemRepo struct {
	DB *sql.DB
}

func NewPostgresItemRepo(db *sql.DB) *PostgresItemRepo {
	return &PostgresItemRepo{DB: db}
}

func (r *PostgresItemRepo) CreateItem(item *models.Item) error {
	if strings.TrimSpace(item.StockCode) == "" {
		return apperr.Validationf("stock_code is required")
	}
	if strings.TrimSpace(item.ItemName) == "" {
		return apperr.Validationf("item_name is required")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	err := r.DB.QueryRow(`
		INSERT INTO items(stock_code, part_no, mnemonic, class, item_name, uoi, qty, created_at, created_by)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`, item.StockCode, item.PartNo, item.Mnemonic, item.Class, item.ItemName, item.Uoi,
		item.Qty, item.CreatedAt, item.CreatedBy).Scan(&item.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return apperr.Conflictf("stock_code %q already exists", item.StockCode)
		}
		return apperr.Storage(err)
	}
	return nil
}

func (r *PostgresItemRepo) GetItems() ([]*models.Item, error) {
	rows, err := r.DB.Query(`
		SELECT id, stock_code, part_no, mnemonic, class, item_name, uoi, qty, created_at, created_by
		FROM items
		ORDER BY stock_code
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var it models.Item
		err := rows.Scan(&it.ID, &it.StockCode, &it.PartNo, &it.Mnemonic, &it.Class,
			&it.ItemName, &it.Uoi, &it.Qty, &it.CreatedAt, &it.CreatedBy)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

func (r *PostgresItemRepo) GetItemByID(id int64) (*models.Item, error) {
	var it models.Item
	err := r.DB.QueryRow(`
		SELECT id, stock_code, part_no, mnemonic, class, item_name, uoi, qty, created_at, created_by
		FROM items
		WHERE id = $1
	`, id).Scan(&it.ID, &it.StockCode, &it.PartNo, &it.Mnemonic, &it.Class,
		&it.ItemName, &it.Uoi, &it.Qty, &it.CreatedAt, &it.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("item %d not found", id)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &it, nil
}

func (r *PostgresItemRepo) UpdateItem(item *models.Item) error {
	res, err := r.DB.Exec(`
		UPDATE items
		SET stock_code=$1, part_no=$2, mnemonic=$3, class=$4, item_name=$5, uoi=$6, qty=$7
		WHERE id=$8
	`, item.StockCode, item.PartNo, item.Mnemonic, item.Class, item.ItemName, item.Uoi, item.Qty, item.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return apperr.Conflictf("stock_code %q already exists", item.StockCode)
		}
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("item %d not found", item.ID)
	}
	return nil
}

func (r *PostgresItemRepo) DeleteItem(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("item %d not found", id)
	}
	return nil
}

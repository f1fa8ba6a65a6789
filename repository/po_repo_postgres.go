package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"bookingtrack/apperr"
	"bookingtrack/models"
)

type PostgresPORepo struct {
	DB *sql.DB
}

func NewPostgresPORepo(db *sql.DB) *PostgresPORepo {
	return &PostgresPORepo{DB: db}
}

func (r *PostgresPORepo) ListPOs() ([]*models.BookingPO, error) {
	rows, err := r.DB.Query(`
		SELECT p.id, p.booking_id, p.po_number, p.status, p.due_date, p.notes,
		       p.total_qty_items, p.total_received_items, p.is_removed, p.created_at, p.created_by,
		       u.email
		FROM booking_po p
		LEFT JOIN users u ON p.created_by = u.id
		WHERE p.is_removed = FALSE
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var result []*models.BookingPO
	for rows.Next() {
		var po models.BookingPO
		err := rows.Scan(&po.ID, &po.BookingID, &po.PoNumber, &po.Status, &po.DueDate, &po.Notes,
			&po.TotalQtyItems, &po.TotalReceivedItems, &po.IsRemoved, &po.CreatedAt, &po.CreatedBy,
			&po.CreatedByEmail)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		result = append(result, &po)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

func (r *PostgresPORepo) GetPOByID(id int64) (*models.BookingPO, error) {
	var po models.BookingPO
	err := r.DB.QueryRow(`
		SELECT id, booking_id, po_number, status, due_date, notes,
		       total_qty_items, total_received_items, is_removed, created_at, created_by
		FROM booking_po
		WHERE id = $1
	`, id).Scan(&po.ID, &po.BookingID, &po.PoNumber, &po.Status, &po.DueDate, &po.Notes,
		&po.TotalQtyItems, &po.TotalReceivedItems, &po.IsRemoved, &po.CreatedAt, &po.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("PO %d not found", id)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &po, nil
}

func (r *PostgresPORepo) UpdatePO(id int64, patch models.POPatch) error {
	if patch.IsEmpty() {
		return apperr.Validationf("status, notes, due_date or total_received_items must be provided for update")
	}

	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(expr string, val interface{}) {
		set = append(set, fmt.Sprintf(expr, i))
		args = append(args, val)
		i++
	}

	if patch.TotalReceivedItems != nil {
		add("total_received_items = $%d", *patch.TotalReceivedItems)
	}
	if patch.Status != nil {
		add("status = $%d", *patch.Status)
	}
	if patch.Notes != nil {
		add("notes = $%d", *patch.Notes)
	}
	if patch.DueDate != nil {
		add("due_date = $%d", *patch.DueDate)
	}

	query := fmt.Sprintf("UPDATE booking_po SET %s WHERE id = $%d", strings.Join(set, ", "), i)
	args = append(args, id)

	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("PO %d not found", id)
	}
	return nil
}

func (r *PostgresPORepo) DeletePO(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM booking_po WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("PO %d not found", id)
	}
	return nil
}

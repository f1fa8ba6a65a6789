package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"bookingtrack/apperr"
	"bookingtrack/models"
	"bookingtrack/utils"
)

type PostgresBookingRepo struct {
	DB *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{DB: db}
}

// ------------------------ Create Booking ------------------------

func (r *PostgresBookingRepo) CreateBookingWithItems(booking *models.Booking, items []models.NewBookingItemInput) (int64, error) {
	// Fail fast before touching the store: the whole creation is rejected
	// if any line is invalid.
	if strings.TrimSpace(booking.Description) == "" {
		return 0, apperr.Validationf("description is required")
	}
	if strings.TrimSpace(booking.CnNo) == "" {
		return 0, apperr.Validationf("cn_no is required")
	}
	if len(items) == 0 {
		return 0, apperr.Validationf("at least one item is required")
	}
	for _, it := range items {
		if it.Qty < 1 {
			return 0, apperr.Validationf("item %d quantity must be at least 1", it.ItemID)
		}
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	booking.BookingStatus = models.BookingStatusOpen

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	defer tx.Rollback()

	var bookingID int64
	err = tx.QueryRow(`
		INSERT INTO bookings(description, cn_no, requested_by, approved_status, booking_status, created_at, created_by)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, booking.Description, booking.CnNo, booking.RequestedBy, booking.ApprovedStatus,
		booking.BookingStatus, booking.CreatedAt, booking.CreatedBy).Scan(&bookingID)
	if err != nil {
		return 0, apperr.Storage(err)
	}

	for i := range items {
		it := &items[i]
		_, err := tx.Exec(`
			INSERT INTO booking_items(booking_id, item_id, item_qty, item_remark)
			VALUES($1,$2,$3,$4)
		`, bookingID, it.ItemID, it.Qty, it.ItemRemark)
		if err != nil {
			return 0, apperr.Storage(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage(err)
	}
	booking.ID = bookingID
	return bookingID, nil
}

// ------------------------ Assign Purchase Orders ------------------------

func (r *PostgresBookingRepo) AssignPurchaseOrders(bookingID int64, poNumbers []string, actor string) (int, error) {
	if len(poNumbers) == 0 {
		return 0, apperr.Validationf("po_numbers must be a non-empty array")
	}
	for _, po := range poNumbers {
		if strings.TrimSpace(po) == "" {
			return 0, apperr.Validationf("po_number cannot be empty")
		}
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRow(`SELECT id FROM bookings WHERE id=$1 AND is_removed=FALSE`, bookingID).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, apperr.NotFoundf("booking %d not found", bookingID)
	}
	if err != nil {
		return 0, apperr.Storage(err)
	}

	createdAt := time.Now().UTC()
	inserted := 0
	for _, po := range poNumbers {
		_, err := tx.Exec(`
			INSERT INTO booking_po(booking_id, po_number, status, notes, created_at, created_by)
			VALUES($1,$2,'','',$3,$4)
		`, bookingID, po, createdAt, actor)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
				return 0, apperr.Conflictf("po_number %q already exists for booking %d", po, bookingID)
			}
			return 0, apperr.Storage(err)
		}
		inserted++
	}

	if err := r.touchBooking(tx, bookingID, actor, createdAt); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage(err)
	}
	return inserted, nil
}

// ------------------------ Assign Items to PO ------------------------

func (r *PostgresBookingRepo) AssignItemsToPO(bookingID int64, itemIDs []int64, poNumber, actor string) (int, error) {
	if strings.TrimSpace(poNumber) == "" {
		return 0, apperr.Validationf("po_number is required")
	}
	if len(itemIDs) == 0 {
		return 0, apperr.Validationf("item_ids must be a non-empty array")
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE booking_items
		SET po_number = $1
		WHERE booking_id = $2 AND item_id = ANY($3) AND is_removed = FALSE
	`, poNumber, bookingID, pq.Array(itemIDs))
	if err != nil {
		return 0, apperr.Storage(err)
	}

	var totalQty int
	err = tx.QueryRow(`
		SELECT COALESCE(SUM(item_qty), 0)
		FROM booking_items
		WHERE booking_id = $1 AND po_number = $2 AND is_removed = FALSE
	`, bookingID, poNumber).Scan(&totalQty)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	if totalQty <= 0 {
		return 0, apperr.NotFoundf("no items found for the given item ids")
	}

	res, err := tx.Exec(`
		UPDATE booking_po
		SET total_qty_items = $1
		WHERE booking_id = $2 AND po_number = $3
	`, totalQty, bookingID, poNumber)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	if affected == 0 {
		return 0, apperr.NotFoundf("po_number %q not assigned to booking %d", poNumber, bookingID)
	}

	if err := r.touchBooking(tx, bookingID, actor, time.Now().UTC()); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage(err)
	}
	return totalQty, nil
}

// ------------------------ Record Receipt ------------------------

// RecordReceipt updates one line's received count and re-derives the PO and
// booking aggregates inside the same transaction. The booking_po row is locked
// first so concurrent receipts against the same PO serialize instead of
// overwriting each other's roll-up.
func (r *PostgresBookingRepo) RecordReceipt(bookingID, itemID int64, poNumber *string, totalReceived int, actor string) (*models.ReceiptResult, error) {
	if totalReceived < 0 {
		return nil, apperr.Validationf("total_received_items cannot be negative")
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer tx.Rollback()

	var totalQtyItems int
	err = tx.QueryRow(`
		SELECT total_qty_items
		FROM booking_po
		WHERE booking_id = $1 AND po_number = $2
		FOR UPDATE
	`, bookingID, poNumber).Scan(&totalQtyItems)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("no purchase order found for booking %d; assign a PO before posting receipts", bookingID)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var itemQty int
	err = tx.QueryRow(`
		SELECT item_qty
		FROM booking_items
		WHERE booking_id = $1 AND item_id = $2 AND po_number = $3 AND is_removed = FALSE
	`, bookingID, itemID, poNumber).Scan(&itemQty)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("booking item %d not found under booking %d", itemID, bookingID)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if totalReceived > itemQty {
		return nil, apperr.Validationf("total_received_items %d exceeds ordered quantity %d", totalReceived, itemQty)
	}

	_, err = tx.Exec(`
		UPDATE booking_items
		SET total_received_items = $1
		WHERE booking_id = $2 AND item_id = $3 AND po_number = $4 AND is_removed = FALSE
	`, totalReceived, bookingID, itemID, poNumber)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var totalSum int
	err = tx.QueryRow(`
		SELECT COALESCE(SUM(total_received_items), 0)
		FROM booking_items
		WHERE booking_id = $1 AND po_number = $2 AND is_removed = FALSE
	`, bookingID, poNumber).Scan(&totalSum)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	status := utils.DerivePOStatus(totalSum, totalQtyItems)

	_, err = tx.Exec(`
		UPDATE booking_po
		SET total_received_items = $1, status = $2
		WHERE booking_id = $3 AND po_number = $4
	`, totalSum, status, bookingID, poNumber)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	if err := r.rollUpBookingStatus(tx, bookingID, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Storage(err)
	}
	return &models.ReceiptResult{
		TotalReceivedItemsInBookingPO: totalSum,
		Status:                        status,
	}, nil
}

// rollUpBookingStatus advances the parent booking's status from the current
// PO aggregates. The booking status never regresses: a PO correction can move
// the PO itself back to partial, but the booking keeps the furthest status it
// has reached.
func (r *PostgresBookingRepo) rollUpBookingStatus(tx *sql.Tx, bookingID int64, actor string) error {
	var current string
	err := tx.QueryRow(`SELECT booking_status FROM bookings WHERE id=$1 FOR UPDATE`, bookingID).Scan(&current)
	if err == sql.ErrNoRows {
		return apperr.NotFoundf("booking %d not found", bookingID)
	}
	if err != nil {
		return apperr.Storage(err)
	}

	var totalPOs, openPOs, sumReceived int
	err = tx.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status <> $2),
		       COALESCE(SUM(total_received_items), 0)
		FROM booking_po
		WHERE booking_id = $1 AND is_removed = FALSE
	`, bookingID, models.POStatusCompleted).Scan(&totalPOs, &openPOs, &sumReceived)
	if err != nil {
		return apperr.Storage(err)
	}

	candidate := models.BookingStatusOpen
	switch {
	case totalPOs > 0 && openPOs == 0:
		candidate = models.BookingStatusClosed
	case sumReceived > 0:
		candidate = models.BookingStatusPartial
	}

	now := time.Now().UTC()
	if models.BookingStatusRank(candidate) > models.BookingStatusRank(current) {
		if candidate == models.BookingStatusClosed {
			_, err = tx.Exec(`
				UPDATE bookings
				SET booking_status=$1, received=TRUE, received_date=$2, last_updated_at=$2, last_updated_by=$3
				WHERE id=$4
			`, candidate, now, actor, bookingID)
		} else {
			_, err = tx.Exec(`
				UPDATE bookings
				SET booking_status=$1, last_updated_at=$2, last_updated_by=$3
				WHERE id=$4
			`, candidate, now, actor, bookingID)
		}
		if err != nil {
			return apperr.Storage(err)
		}
		return nil
	}
	return r.touchBooking(tx, bookingID, actor, now)
}

func (r *PostgresBookingRepo) touchBooking(tx *sql.Tx, bookingID int64, actor string, at time.Time) error {
	_, err := tx.Exec(`
		UPDATE bookings SET last_updated_at=$1, last_updated_by=$2 WHERE id=$3
	`, at, actor, bookingID)
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// ------------------------ Partial Update ------------------------

func (r *PostgresBookingRepo) UpdateBookingFields(id int64, patch models.BookingPatch, actor string) error {
	if patch.IsEmpty() {
		return apperr.Validationf("no updatable fields provided")
	}

	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(expr string, val interface{}) {
		set = append(set, fmt.Sprintf(expr, i))
		args = append(args, val)
		i++
	}

	if patch.ApprovedStatus != nil {
		add("approved_status = $%d", *patch.ApprovedStatus)
	}
	if patch.DueDate != nil {
		add("due_date = $%d", *patch.DueDate)
	}
	if patch.WrNo != nil {
		add("wr_no = $%d", *patch.WrNo)
	}
	if patch.ReceivedDate != nil {
		add("received_date = $%d", *patch.ReceivedDate)
		set = append(set, "received = TRUE")
	}
	if patch.PostingWr != nil {
		add("posting_wr = $%d", *patch.PostingWr)
		if *patch.PostingWr {
			set = append(set, fmt.Sprintf("booking_status = '%s'", models.BookingStatusClosed))
		}
	}

	add("last_updated_at = $%d", time.Now().UTC())
	add("last_updated_by = $%d", actor)

	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d", strings.Join(set, ", "), i)
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
		return apperr.NotFoundf("booking %d not found", id)
	}
	return nil
}

// ------------------------ Soft Delete ------------------------

func (r *PostgresBookingRepo) SoftDeleteBooking(id int64, reason, actor string) error {
	if strings.TrimSpace(reason) == "" {
		return apperr.Validationf("remove_reason is required")
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return apperr.Storage(err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	res, err := tx.Exec(`
		UPDATE bookings
		SET is_removed=TRUE, remove_reason=$1, last_updated_at=$2, last_updated_by=$3
		WHERE id=$4 AND is_removed=FALSE
	`, reason, now, actor, id)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("booking %d not found", id)
	}

	if _, err := tx.Exec(`UPDATE booking_items SET is_removed=TRUE WHERE booking_id=$1`, id); err != nil {
		return apperr.Storage(err)
	}
	if _, err := tx.Exec(`UPDATE booking_po SET is_removed=TRUE WHERE booking_id=$1`, id); err != nil {
		return apperr.Storage(err)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// ------------------------ Listing / Detail ------------------------

const bookingColumns = `
	b.id, b.description, b.cn_no, b.requested_by, b.approved_status, b.booking_status,
	b.wr_no, b.posting_wr, b.received, b.received_date, b.due_date,
	b.is_removed, b.remove_reason, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by`

func scanBooking(scanner interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	err := scanner.Scan(
		&b.ID, &b.Description, &b.CnNo, &b.RequestedBy, &b.ApprovedStatus, &b.BookingStatus,
		&b.WrNo, &b.PostingWr, &b.Received, &b.ReceivedDate, &b.DueDate,
		&b.IsRemoved, &b.RemoveReason, &b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBookingRepo) GetBookings(search string, page, limit int) (*models.BookingPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pattern := "%" + search + "%"

	var totalItems int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings b
		WHERE b.is_removed = FALSE AND (b.description ILIKE $1 OR b.cn_no ILIKE $1)
	`, pattern).Scan(&totalItems)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	rows, err := r.DB.Query(`
		SELECT`+bookingColumns+`
		FROM bookings b
		WHERE b.is_removed = FALSE AND (b.description ILIKE $1 OR b.cn_no ILIKE $1)
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`, pattern, limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	summaries, err := r.buildSummaries(bookings, false)
	if err != nil {
		return nil, err
	}

	totalPages := (totalItems + limit - 1) / limit
	return &models.BookingPage{
		Data:       summaries,
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

func (r *PostgresBookingRepo) GetBookingByID(id int64) (*models.BookingSummary, error) {
	row := r.DB.QueryRow(`SELECT`+bookingColumns+` FROM bookings b WHERE b.id = $1`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("booking %d not found", id)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}

	summaries, err := r.buildSummaries([]*models.Booking{b}, true)
	if err != nil {
		return nil, err
	}
	return summaries[0], nil
}

func (r *PostgresBookingRepo) OpenBookings() ([]*models.BookingSummary, error) {
	rows, err := r.DB.Query(`
		SELECT` + bookingColumns + `
		FROM bookings b
		WHERE b.booking_status = 'open' AND b.is_removed = FALSE
		ORDER BY b.created_at DESC
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return r.buildSummaries(bookings, false)
}

// buildSummaries batch-loads items and POs for the given bookings (one IN
// query each, no N+1) and derives the presentation fields.
func (r *PostgresBookingRepo) buildSummaries(bookings []*models.Booking, withItems bool) ([]*models.BookingSummary, error) {
	summaries := make([]*models.BookingSummary, 0, len(bookings))
	if len(bookings) == 0 {
		return summaries, nil
	}

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	poMap := make(map[int64][]models.BookingPO)
	poRows, err := r.DB.Query(`
		SELECT id, booking_id, po_number, status, due_date, notes,
		       total_qty_items, total_received_items, is_removed, created_at, created_by
		FROM booking_po
		WHERE booking_id = ANY($1) AND is_removed = FALSE
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer poRows.Close()
	for poRows.Next() {
		var po models.BookingPO
		err := poRows.Scan(&po.ID, &po.BookingID, &po.PoNumber, &po.Status, &po.DueDate, &po.Notes,
			&po.TotalQtyItems, &po.TotalReceivedItems, &po.IsRemoved, &po.CreatedAt, &po.CreatedBy)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		poMap[po.BookingID] = append(poMap[po.BookingID], po)
	}
	if err := poRows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	itemMap := make(map[int64][]models.BookingItem)
	itemQuery := `
		SELECT bi.id, bi.booking_id, bi.item_id, bi.item_qty, bi.po_number,
		       bi.total_received_items, bi.item_remark, bi.is_removed
		FROM booking_items bi
		WHERE bi.booking_id = ANY($1) AND bi.is_removed = FALSE
		ORDER BY bi.id`
	if withItems {
		itemQuery = `
		SELECT bi.id, bi.booking_id, bi.item_id, bi.item_qty, bi.po_number,
		       bi.total_received_items, bi.item_remark, bi.is_removed,
		       i.id, i.stock_code, i.part_no, i.mnemonic, i.class, i.item_name, i.uoi, i.qty, i.created_at, i.created_by
		FROM booking_items bi
		LEFT JOIN items i ON bi.item_id = i.id
		WHERE bi.booking_id = ANY($1) AND bi.is_removed = FALSE
		ORDER BY bi.id`
	}
	itemRows, err := r.DB.Query(itemQuery, pq.Array(ids))
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var bi models.BookingItem
		if withItems {
			var item models.Item
			var itemID *int64
			err = itemRows.Scan(&bi.ID, &bi.BookingID, &bi.ItemID, &bi.ItemQty, &bi.PoNumber,
				&bi.TotalReceivedItems, &bi.ItemRemark, &bi.IsRemoved,
				&itemID, &item.StockCode, &item.PartNo, &item.Mnemonic, &item.Class,
				&item.ItemName, &item.Uoi, &item.Qty, &item.CreatedAt, &item.CreatedBy)
			if err == nil && itemID != nil {
				item.ID = *itemID
				bi.Item = &item
			}
		} else {
			err = itemRows.Scan(&bi.ID, &bi.BookingID, &bi.ItemID, &bi.ItemQty, &bi.PoNumber,
				&bi.TotalReceivedItems, &bi.ItemRemark, &bi.IsRemoved)
		}
		if err != nil {
			return nil, apperr.Storage(err)
		}
		itemMap[bi.BookingID] = append(itemMap[bi.BookingID], bi)
	}
	if err := itemRows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}

	now := time.Now().UTC()
	for _, b := range bookings {
		s := &models.BookingSummary{Booking: *b}
		s.PoDetails = []models.PODetail{}
		s.ItemIDs = []int64{}

		seen := make(map[models.PODetail]bool)
		for _, po := range poMap[b.ID] {
			d := models.PODetail{PoNumber: po.PoNumber, Status: po.Status}
			if !seen[d] {
				seen[d] = true
				s.PoDetails = append(s.PoDetails, d)
			}
			s.TotalQtyItems += po.TotalQtyItems
			s.TotalReceivedItems += po.TotalReceivedItems
		}
		for _, bi := range itemMap[b.ID] {
			s.ItemIDs = append(s.ItemIDs, bi.ItemID)
		}
		if withItems {
			s.Items = itemMap[b.ID]
			s.POs = poMap[b.ID]
		}

		s.Aging = utils.Aging(b.CreatedAt, b.BookingStatus, now)
		s.ReceivedPercentage = utils.ReceivedPercentage(s.TotalReceivedItems, s.TotalQtyItems)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// ------------------------ Export ------------------------

func (r *PostgresBookingRepo) ExportRows() ([]models.ExportRow, error) {
	rows, err := r.DB.Query(`
		SELECT
			bi.booking_id,
			COALESCE(b.description, 'No Description') AS description,
			COALESCE(b.cn_no, 'No CN No') AS cn_no,
			COALESCE(b.is_removed, FALSE) AS is_removed,
			COALESCE(bi.po_number, '') AS po_number,
			bi.item_qty,
			bi.total_received_items,
			COALESCE(i.stock_code, 'Unknown') AS stock_code,
			COALESCE(i.part_no, 'Unknown') AS part_no,
			COALESCE(i.mnemonic, 'Unknown') AS mnemonic,
			COALESCE(i.class, 'Unknown') AS class,
			COALESCE(i.item_name, 'Unknown') AS item_name,
			COALESCE(i.uoi, 'Unknown') AS uoi,
			COALESCE(to_char(bp.due_date, 'YYYY-MM-DD'), '') AS due_date
		FROM booking_items bi
		LEFT JOIN bookings b ON bi.booking_id = b.id
		LEFT JOIN items i ON bi.item_id = i.id
		LEFT JOIN booking_po bp ON bi.booking_id = bp.booking_id AND bi.po_number = bp.po_number
		ORDER BY bi.booking_id, bi.id
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var result []models.ExportRow
	for rows.Next() {
		var row models.ExportRow
		err := rows.Scan(&row.BookingID, &row.Description, &row.CnNo, &row.IsRemoved,
			&row.PoNumber, &row.ItemQty, &row.TotalReceivedItems,
			&row.StockCode, &row.PartNo, &row.Mnemonic, &row.Class, &row.ItemName, &row.Uoi, &row.DueDate)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

// ------------------------ PDF Helpers ------------------------

func (r *PostgresBookingRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE bookings
		SET pdf_path = $1, pdf_created_at = $2
		WHERE id = $3
	`, path, createdAt, id)
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

package models

import "time"

// PO status values. A PO with no recorded receipts keeps the empty status it
// was created with.
const (
	POStatusPartial   = "partial"
	POStatusCompleted = "completed"
	POStatusClosed    = "closed"
)

type BookingPO struct {
	ID                 int64      `json:"id" db:"id"`
	BookingID          int64      `json:"booking_id" db:"booking_id"`
	PoNumber           string     `json:"po_number" db:"po_number"`
	Status             string     `json:"status" db:"status"`
	DueDate            *time.Time `json:"due_date,omitempty" db:"due_date"`
	Notes              string     `json:"notes" db:"notes"`
	TotalQtyItems      int        `json:"total_qty_items" db:"total_qty_items"`
	TotalReceivedItems int        `json:"total_received_items" db:"total_received_items"`
	IsRemoved          bool       `json:"is_removed" db:"is_removed"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	CreatedBy          string     `json:"created_by" db:"created_by"`

	// Joined in by the PO list API
	CreatedByEmail *string `json:"created_by_email,omitempty"`
}

// POPatch carries the optional fields of a PO-level partial update.
type POPatch struct {
	TotalReceivedItems *int       `json:"total_received_items,omitempty"`
	Status             *string    `json:"status,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	DueDate            *time.Time `json:"due_date,omitempty"`
}

// IsEmpty reports whether the patch sets nothing.
func (p POPatch) IsEmpty() bool {
	return p.TotalReceivedItems == nil && p.Status == nil && p.Notes == nil && p.DueDate == nil
}

// ReceiptResult is what RecordReceipt hands back to the caller: the re-derived
// PO aggregate after the line-level update.
type ReceiptResult struct {
	TotalReceivedItemsInBookingPO int    `json:"total_received_items_in_booking_po"`
	Status                        string `json:"status"`
}

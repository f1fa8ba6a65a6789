package models

import (
	"fmt"
	"time"
)

// BookingReference is the user-facing reference for a booking id.
func BookingReference(id int64) string {
	return fmt.Sprintf("BOOKSM%d", id)
}

// Booking status values. A booking only ever moves forward through these.
const (
	BookingStatusOpen    = "open"
	BookingStatusPartial = "partial"
	BookingStatusClosed  = "closed"
)

type Booking struct {
	ID             int64      `json:"id" db:"id"`
	Description    string     `json:"description" db:"description"`
	CnNo           string     `json:"cn_no" db:"cn_no"`
	RequestedBy    *string    `json:"requested_by,omitempty" db:"requested_by"`
	ApprovedStatus bool       `json:"approved_status" db:"approved_status"`
	BookingStatus  string     `json:"booking_status" db:"booking_status"`
	WrNo           *string    `json:"wr_no,omitempty" db:"wr_no"`
	PostingWr      bool       `json:"posting_wr" db:"posting_wr"`
	Received       bool       `json:"received" db:"received"`
	ReceivedDate   *time.Time `json:"received_date,omitempty" db:"received_date"`
	DueDate        *time.Time `json:"due_date,omitempty" db:"due_date"`
	IsRemoved      bool       `json:"is_removed" db:"is_removed"`
	RemoveReason   *string    `json:"remove_reason,omitempty" db:"remove_reason"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	CreatedBy      string     `json:"created_by" db:"created_by"`
	LastUpdatedAt  *time.Time `json:"last_updated_at,omitempty" db:"last_updated_at"`
	LastUpdatedBy  *string    `json:"last_updated_by,omitempty" db:"last_updated_by"`
	PdfPath        *string    `json:"pdf_path,omitempty" db:"pdf_path"`
	PdfCreatedAt   *time.Time `json:"pdf_created_at,omitempty" db:"pdf_created_at"`

	// Nested objects for responses (denormalized)
	Items []BookingItem `json:"items,omitempty"`
	POs   []BookingPO   `json:"pos,omitempty"`
}

// BookingStatusRank orders booking statuses for the monotonic transition
// open -> partial -> closed. Unknown statuses rank lowest.
func BookingStatusRank(status string) int {
	switch status {
	case BookingStatusClosed, "close":
		return 2
	case BookingStatusPartial:
		return 1
	default:
		return 0
	}
}

// NewBookingItemInput is one line of a booking creation request.
type NewBookingItemInput struct {
	ItemID     int64   `json:"id"`
	Qty        int     `json:"qty"`
	ItemRemark *string `json:"item_remark,omitempty"`
}

// BookingPatch carries the optional fields of a partial booking update.
// Only non-nil fields are written.
type BookingPatch struct {
	ApprovedStatus *bool      `json:"approved_status,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	ReceivedDate   *time.Time `json:"received_date,omitempty"`
	WrNo           *string    `json:"wr_no,omitempty"`
	PostingWr      *bool      `json:"posting_wr,omitempty"`
}

// IsEmpty reports whether the patch sets nothing.
func (p BookingPatch) IsEmpty() bool {
	return p.ApprovedStatus == nil && p.DueDate == nil && p.ReceivedDate == nil &&
		p.WrNo == nil && p.PostingWr == nil
}

// PODetail is the de-duplicated (po_number, status) pair shown on booking listings.
type PODetail struct {
	PoNumber string `json:"po_number"`
	Status   string `json:"status"`
}

// BookingSummary is one flattened row of the booking list API.
type BookingSummary struct {
	Booking
	PoDetails          []PODetail `json:"po_details"`
	ItemIDs            []int64    `json:"item_ids"`
	TotalQtyItems      int        `json:"total_qty_items"`
	TotalReceivedItems int        `json:"total_received_items"`
	Aging              int        `json:"aging"`
	ReceivedPercentage string     `json:"received_percentage"`
}

// BookingPage is the paginated booking list response body.
type BookingPage struct {
	Data       []*BookingSummary `json:"data"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

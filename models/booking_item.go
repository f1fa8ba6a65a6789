package models

type BookingItem struct {
	ID                 int64   `json:"id" db:"id"`
	BookingID          int64   `json:"booking_id" db:"booking_id"`
	ItemID             int64   `json:"item_id" db:"item_id"`
	ItemQty            int     `json:"item_qty" db:"item_qty"`
	PoNumber           *string `json:"po_number,omitempty" db:"po_number"`
	TotalReceivedItems int     `json:"total_received_items" db:"total_received_items"`
	ItemRemark         *string `json:"item_remark,omitempty" db:"item_remark"`
	IsRemoved          bool    `json:"is_removed" db:"is_removed"`

	// Catalog fields joined in for detail responses
	Item *Item `json:"item,omitempty"`
}

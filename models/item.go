package models

import "time"

type Item struct {
	ID        int64     `json:"id" db:"id"`
	StockCode string    `json:"stock_code" db:"stock_code"`
	PartNo    *string   `json:"part_no,omitempty" db:"part_no"`
	Mnemonic  *string   `json:"mnemonic,omitempty" db:"mnemonic"`
	Class     *string   `json:"class,omitempty" db:"class"`
	ItemName  string    `json:"item_name" db:"item_name"`
	Uoi       *string   `json:"uoi,omitempty" db:"uoi"`
	Qty       *int      `json:"qty,omitempty" db:"qty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	CreatedBy *string   `json:"created_by,omitempty" db:"created_by"`
}

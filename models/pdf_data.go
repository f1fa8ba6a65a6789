package models

type BookingPDFData struct {
	Booking   *BookingSummary // booking with items and PO groups
	Date      string          // formatted creation date
	Reference string          // BOOKSM<id> reference shown on the header
	ItemCount int
}

// ExportRow is one line of the spreadsheet export: the booking_items join
// flattened the way the external sheet expects it.
type ExportRow struct {
	BookingID          int64
	Description        string
	CnNo               string
	PoNumber           string
	DueDate            string
	StockCode          string
	PartNo             string
	Mnemonic           string
	Class              string
	ItemName           string
	Uoi                string
	ItemQty            int
	TotalReceivedItems int
	IsRemoved          bool
}

// Reference formats the booking reference used in notifications and exports.
func (r ExportRow) Reference() string {
	return BookingReference(r.BookingID)
}

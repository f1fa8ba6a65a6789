package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"bookingtrack/models"
)

// sheet column layout expected by the external tracking spreadsheet
var exportHeadings = []string{
	"No Booking", "Description", "CN No", "PO Number", "Due Date",
	"Stock Code", "Part No", "Mnemonic", "Class", "Item Name",
	"UOI", "Qty", "Total Received", "Removed",
}

// BuildBookingWorkbook renders the flattened booking-items rows into an
// xlsx workbook with the external sheet's column layout.
func BuildBookingWorkbook(rows []models.ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	col := 'A'
	for _, h := range exportHeadings {
		f.SetCellValue(sheetName, string(col)+"1", h)
		col++
	}

	for i, row := range rows {
		rowNo := fmt.Sprint(i + 2)
		removed := ""
		if row.IsRemoved {
			removed = "YES"
		}
		values := []interface{}{
			row.Reference(), row.Description, row.CnNo, row.PoNumber, row.DueDate,
			row.StockCode, row.PartNo, row.Mnemonic, row.Class, row.ItemName,
			row.Uoi, row.ItemQty, row.TotalReceivedItems, removed,
		}
		col := 'A'
		for _, value := range values {
			f.SetCellValue(sheetName, string(col)+rowNo, value)
			col++
		}
	}

	return f, nil
}

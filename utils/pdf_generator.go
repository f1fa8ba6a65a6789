package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"bookingtrack/models"
)

const bookingTemplatePath = "templates/booking_template.html"

// buildBookingHTML renders the booking summary into the printable page shell.
func buildBookingHTML(booking *models.BookingSummary, templatePath string) (string, error) {
	formattedDate := "-"
	if !booking.CreatedAt.IsZero() {
		formattedDate = booking.CreatedAt.Format("02-Jan-2006")
	}

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	data := models.BookingPDFData{
		Booking:   booking,
		Date:      formattedDate,
		Reference: models.BookingReference(booking.ID),
		ItemCount: len(booking.Items),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.booking-sheet {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='booking-sheet'>` + body.String() + `</div></body></html>`, nil
}

// GenerateBookingPDF renders an already-loaded booking summary to PDF via
// headless Chrome.
func GenerateBookingPDF(booking *models.BookingSummary) ([]byte, error) {
	if booking == nil {
		return nil, nil
	}

	finalHTML, err := buildBookingHTML(booking, bookingTemplatePath)
	if err != nil {
		return nil, err
	}

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "booking_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

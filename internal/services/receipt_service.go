package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/RGA-goaltending/rga/internal/domain/models"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF confirmation for a completed booking.
type ReceiptService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	// Loader overrides the repository lookup in tests.
	Loader func(bookingID string) (models.BookingDetail, error)
}

func (s ReceiptService) GenerateReceipt(bookingID string) ([]byte, string, error) {
	d, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", "booking_id="+bookingID)
	return buildReceiptPDF(d)
}

func (s ReceiptService) loadBooking(bookingID string) (models.BookingDetail, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetDetailByID(bookingID)
}

func buildReceiptPDF(d models.BookingDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RGA GOALTENDING - BOOKING RECEIPT")
	pdf.Ln(12)

	what := d.PackageName
	when := d.SlotDate
	if d.CampID != "" {
		what = d.CampTitle
	}
	if d.SlotStartTime != "" {
		when = fmt.Sprintf("%s at %s", d.SlotDate, utils.FormatTime12h(d.SlotStartTime))
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Customer      : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Email         : %s", safe(d.CustomerEmail, "-")),
		fmt.Sprintf("Session       : %s", safe(what, "-")),
		fmt.Sprintf("Scheduled     : %s", safe(when, "-")),
		fmt.Sprintf("Amount Paid   : %s", utils.FormatUSDCents(d.AmountCents)),
		fmt.Sprintf("Status        : %s", strings.ToUpper(string(d.Status))),
		fmt.Sprintf("Booking Ref   : %s", d.ID),
		fmt.Sprintf("Payment Ref   : %s", safe(d.SessionID, "-")),
		fmt.Sprintf("Booked At     : %s", utils.FormatDateTime(d.CreatedAt)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Keep this receipt as proof of your reservation. See you on the ice!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("receipt-%s.pdf", d.ID), nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/domain/models"
)

func TestGenerateReceiptProducesPDF(t *testing.T) {
	svc := ReceiptService{
		Loader: func(bookingID string) (models.BookingDetail, error) {
			return models.BookingDetail{
				Booking: models.Booking{
					ID:            bookingID,
					SlotID:        "slot-1",
					CustomerName:  "Jane Doe",
					CustomerEmail: "jane@example.com",
					SessionID:     "cs_123",
					AmountCents:   15000,
					Status:        models.BookingStatusConfirmed,
					CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
				},
				SlotDate:      "2026-03-15",
				SlotStartTime: "09:00",
				PackageName:   "Elite Session",
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateReceipt("b1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:min(8, len(pdf))])
	}
	if filename != "receipt-b1.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateReceiptPropagatesNotFound(t *testing.T) {
	svc := ReceiptService{
		Loader: func(string) (models.BookingDetail, error) {
			return models.BookingDetail{}, domain.NotFoundError{Resource: "booking"}
		},
	}

	_, _, err := svc.GenerateReceipt("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

package models

import "time"

// BookingStatus tracks the durable booking record state.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
)

// Booking is the durable proof of a completed sale. Rows are append-only;
// only the status may move confirmed -> paid.
type Booking struct {
	ID            string        `json:"id"`
	SlotID        string        `json:"slotId,omitempty"`
	CampID        string        `json:"campId,omitempty"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	UserID        string        `json:"userId"`
	SessionID     string        `json:"sessionId"`
	AmountCents   int64         `json:"amountCents"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
}

// BookingDetail joins a booking with its parent slot for display and receipts.
type BookingDetail struct {
	Booking
	SlotDate      string `json:"slotDate,omitempty"`
	SlotStartTime string `json:"slotStartTime,omitempty"`
	PackageName   string `json:"packageName,omitempty"`
	CampTitle     string `json:"campTitle,omitempty"`
}

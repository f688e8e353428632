package models

// SlotStatus is the lifecycle state of a sellable training slot.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusPending   SlotStatus = "pending"
	SlotStatusSoldOut   SlotStatus = "sold_out"
)

// Slot is one unit of sellable training inventory.
type Slot struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`      // YYYY-MM-DD
	StartTime   string     `json:"startTime"` // HH:MM
	PackageName string     `json:"packageName"`
	Price       int64      `json:"price"` // whole USD
	Capacity    int        `json:"capacity"`
	BookedCount int        `json:"bookedCount"`
	Status      SlotStatus `json:"status"`

	// Hold fields, set while a checkout is in flight.
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	UserID        string `json:"userId,omitempty"`
}

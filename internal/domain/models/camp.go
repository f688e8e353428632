package models

// CampStatus is the lifecycle state of a camp/event.
type CampStatus string

const (
	CampStatusActive CampStatus = "active"
	CampStatusFull   CampStatus = "full"
	CampStatusEnded  CampStatus = "ended"
)

// Camp is multi-day, multi-seat inventory (a goalie camp or clinic).
type Camp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"` // YYYY-MM-DD
	EndDate     string     `json:"endDate"`   // YYYY-MM-DD
	Price       int64      `json:"price"`     // whole USD
	Capacity    int        `json:"capacity"`
	BookedCount int        `json:"bookedCount"`
	Status      CampStatus `json:"status"`
}

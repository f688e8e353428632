package models

// PackageTier is an admin-managed price package shown on the booking page.
type PackageTier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`   // single session, whole USD
	Price5      int64  `json:"price5"`  // 5-session bundle, 0 disables
	Price10     int64  `json:"price10"` // 10-session bundle, 0 disables
	PeopleCount int    `json:"peopleCount"`
	MaxQuantity int    `json:"maxQuantity"`
	SortOrder   int    `json:"order"`
}

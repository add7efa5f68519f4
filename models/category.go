package models

// CategoryGroup is derived, never stored: products bucketed by their trimmed
// category string at read time.
type CategoryGroup struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

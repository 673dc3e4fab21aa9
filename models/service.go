package models

// Service represents a static catalog entry for a styling session.
type Service struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Features        []string `json:"features,omitempty"`
	Price           int      `json:"price"` // whole currency units
	DurationMin     int      `json:"durationMin"`
	Image           string   `json:"image"`
}

package models

// TimeSlot represents a single offerable appointment time.
type TimeSlot struct {
	Time      string `json:"time"` // display label, e.g. "9:00AM"
	Available bool   `json:"available"`
}

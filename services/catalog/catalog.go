package catalog

import (
	"fmt"

	"styleforage/models"
)

// services is the full offering, defined at process start. Order matters: it
// is the order the booking page presents them in.
var services = []models.Service{
	{
		ID:              "closet-edit",
		Title:           "The Closet Edit",
		Description:     "A thoughtful review of your clothes, focused on fit, comfort, and relevance.",
		LongDescription: "You don’t need to overhaul your entire wardrobe—you need a fresh perspective on the one you already have. A Closet Edit is a thoughtful review of your clothes, focused on fit, comfort, and relevance. We edit out pieces that no longer work, create new outfits from what you already own, and pinpoint the missing pieces that will help your wardrobe feel complete and modern.",
		Features: []string{
			"Review of fit, comfort, and current style",
			"Editing items that no longer work",
			"Creating new outfits from existing pieces",
			"Pinpointing wardrobe gaps",
			"Fresh perspective on your style",
		},
		Price:       250,
		DurationMin: 150,
		Image:       "https://images.unsplash.com/photo-1558769132-cb1aea458c5e?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "full-style-reset",
		Title:           "The Full Style Reset Package",
		Description:     "For clients ready for a meaningful refresh and a wardrobe that feels aligned.",
		LongDescription: "Combines The Closet Edit and Personal Shop. This is for clients ready for a meaningful refresh and a wardrobe that feels aligned, confident, and wearable. We start by clearing the noise and finish by intentionally filling the gaps.",
		Features: []string{
			"Full Closet Edit session",
			"Personal Shopping session (In-person or Online)",
			"Style integration",
			"Complete wardrobe alignment",
			"Confidence building",
		},
		Price:       600,
		DurationMin: 300,
		Image:       "https://images.unsplash.com/photo-1445205170230-053b83016050?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "personal-shop",
		Title:           "Personal Shop",
		Description:     "Intentional shopping, guided by fit, comfort, and what’s current.",
		LongDescription: "Intentional shopping, guided by fit, comfort, and what’s current. Available as an In-person shop or Online shop. Best paired with a Closet Edit.",
		Features: []string{
			"Guided by fit and comfort",
			"Focus on current styles",
			"In-person or Online options",
			"Targeted shopping list",
			"Budget management",
		},
		Price:       350,
		DurationMin: 180,
		Image:       "https://images.unsplash.com/photo-1483985988355-763728e1935b?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "style-refresh",
		Title:           "Style Refresh",
		Description:     "A focused update for a season, event, trip, or life change.",
		LongDescription: "A focused update for a season, event, trip, or life change. Ideal if you want a vacation wardrobe, a seasonal update, or a workwear refresh.",
		Features: []string{
			"Vacation wardrobe curation",
			"Seasonal updates",
			"Workwear refresh",
			"Event specific styling",
			"Targeted focus",
		},
		Price:       300,
		DurationMin: 120,
		Image:       "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:              "corporate-workshops",
		Title:           "Corporate Style Workshops",
		Description:     "Practical style talks for teams to show up with confidence and consistency.",
		LongDescription: "I offer style talks for teams who want to show up with confidence and consistency—individually and as a brand. Talks are practical, inclusive, and tailored to your organization.",
		Features: []string{
			"Tailored to your organization",
			"Inclusive & practical advice",
			"Focus on professional image",
			"Amplifying brand presence",
			"Interactive Q&A",
		},
		Price:       500,
		DurationMin: 60,
		Image:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=800&q=80",
	},
}

// timeSlots is the fixed daily slot table. Availability flags are static:
// there is no calendar backend, every date offers the same slots.
var timeSlots = []models.TimeSlot{
	{Time: "9:00AM", Available: true},
	{Time: "10:00AM", Available: true},
	{Time: "11:00AM", Available: true},
	{Time: "12:00PM", Available: false},
	{Time: "1:00PM", Available: true},
	{Time: "2:00PM", Available: true},
	{Time: "3:00PM", Available: false},
	{Time: "4:00PM", Available: true},
}

// All returns the catalog in display order.
func All() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// Get returns the service with the given ID.
func Get(id string) (*models.Service, error) {
	for i := range services {
		if services[i].ID == id {
			svc := services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %q not found", id)
}

// SlotsForDate returns the offerable slots for a date. The date parameter is
// accepted for interface symmetry only; the table does not vary by date.
func SlotsForDate(date string) []models.TimeSlot {
	out := make([]models.TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotAvailable reports whether a slot label exists and is bookable.
func SlotAvailable(label string) bool {
	for _, s := range timeSlots {
		if s.Time == label {
			return s.Available
		}
	}
	return false
}

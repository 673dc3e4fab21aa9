package models

// Step is a stage of the booking wizard.
type Step string

const (
	StepService      Step = "service"
	StepDate         Step = "date"
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Steps lists wizard stages in order.
var Steps = []Step{StepService, StepDate, StepDetails, StepPayment, StepConfirmation}

// CustomerDetails holds the free-text contact fields of the details step.
type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// BookingState is the session aggregate owned by the wizard.
type BookingState struct {
	Step            Step            `json:"step"`
	SelectedService *Service        `json:"selectedService,omitempty"`
	SelectedDate    string          `json:"selectedDate,omitempty"` // "2006-01-02"
	SelectedTimes   []string        `json:"selectedTimes"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// ActionType identifies a wizard state transition.
type ActionType string

const (
	ActionSelectService    ActionType = "select_service"
	ActionSelectDate       ActionType = "select_date"
	ActionToggleTime       ActionType = "toggle_time"
	ActionSetDetails       ActionType = "set_details"
	ActionNext             ActionType = "next"
	ActionBack             ActionType = "back"
	ActionPaymentSucceeded ActionType = "payment_succeeded"
)

// Action is the single mutation command applied to a BookingState.
type Action struct {
	Type      ActionType       `json:"action" binding:"required"`
	ServiceID string           `json:"serviceId,omitempty"`
	Date      string           `json:"date,omitempty"` // "2006-01-02"
	Time      string           `json:"time,omitempty"`
	Details   *CustomerDetails `json:"details,omitempty"`
}

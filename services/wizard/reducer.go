package wizard

import (
	"strings"
	"time"

	"styleforage/models"
	"styleforage/services/catalog"
)

// NewState returns the initial wizard state. A valid serviceID preselects
// that service and starts the wizard at the date step (deep-link entry);
// anything else starts at the service step.
func NewState(serviceID string) models.BookingState {
	state := models.BookingState{
		Step:          models.StepService,
		SelectedTimes: []string{},
	}
	if serviceID != "" {
		if svc, err := catalog.Get(serviceID); err == nil {
			state.SelectedService = svc
			state.Step = models.StepDate
		}
	}
	return state
}

// Apply runs a single action against a state and returns the resulting
// state. It is a pure function: on a guard violation the returned state is
// the input state and the error describes the rejection.
func Apply(state models.BookingState, action models.Action) (models.BookingState, error) {
	switch action.Type {
	case models.ActionSelectService:
		return applySelectService(state, action.ServiceID)
	case models.ActionSelectDate:
		return applySelectDate(state, action.Date)
	case models.ActionToggleTime:
		return applyToggleTime(state, action.Time)
	case models.ActionSetDetails:
		return applySetDetails(state, action.Details)
	case models.ActionNext:
		return applyNext(state)
	case models.ActionBack:
		return applyBack(state)
	case models.ActionPaymentSucceeded:
		return applyPaymentSucceeded(state)
	default:
		return state, newTransitionError("unknownAction", "unrecognized action type")
	}
}

func applySelectService(state models.BookingState, serviceID string) (models.BookingState, error) {
	svc, err := catalog.Get(serviceID)
	if err != nil {
		return state, newTransitionError("unknownService", err.Error())
	}
	// Re-selecting the current service keeps date and times; switching
	// services invalidates them so they never reference a stale duration
	// or price.
	if state.SelectedService == nil || state.SelectedService.ID != svc.ID {
		state.SelectedDate = ""
		state.SelectedTimes = []string{}
	}
	state.SelectedService = svc
	state.Step = models.StepDate
	return state, nil
}

func applySelectDate(state models.BookingState, date string) (models.BookingState, error) {
	if state.SelectedService == nil {
		return state, newTransitionError("noService", "select a service before choosing a date")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return state, newTransitionError("badDate", "date must be formatted YYYY-MM-DD")
	}
	// Times are always evaluated against the chosen date, so a date change
	// clears them.
	if state.SelectedDate != date {
		state.SelectedTimes = []string{}
	}
	state.SelectedDate = date
	return state, nil
}

func applyToggleTime(state models.BookingState, label string) (models.BookingState, error) {
	if state.SelectedDate == "" {
		return state, newTransitionError("noDate", "select a date before choosing times")
	}
	if !catalog.SlotAvailable(label) {
		return state, newTransitionError("slotUnavailable", "that time is not available")
	}
	times := make([]string, 0, len(state.SelectedTimes)+1)
	removed := false
	for _, t := range state.SelectedTimes {
		if t == label {
			removed = true
			continue
		}
		times = append(times, t)
	}
	if !removed {
		times = append(times, label)
	}
	state.SelectedTimes = times
	return state, nil
}

func applySetDetails(state models.BookingState, details *models.CustomerDetails) (models.BookingState, error) {
	if details == nil {
		return state, newTransitionError("noDetails", "details payload is required")
	}
	state.CustomerDetails = *details
	return state, nil
}

func applyNext(state models.BookingState) (models.BookingState, error) {
	switch state.Step {
	case models.StepService:
		if state.SelectedService == nil {
			return state, newTransitionError("noService", "select a service to continue")
		}
		state.Step = models.StepDate
	case models.StepDate:
		if state.SelectedDate == "" || len(state.SelectedTimes) == 0 {
			return state, newTransitionError("incompleteSchedule", "select a date and at least one time to continue")
		}
		state.Step = models.StepDetails
	case models.StepDetails:
		if strings.TrimSpace(state.CustomerDetails.Name) == "" || strings.TrimSpace(state.CustomerDetails.Email) == "" {
			return state, newTransitionError("incompleteDetails", "name and email are required to continue")
		}
		state.Step = models.StepPayment
	case models.StepPayment:
		// Only the payment collaborator's success signal advances past
		// the payment step.
		return state, newTransitionError("paymentPending", "payment must complete before confirmation")
	default:
		return state, newTransitionError("atEnd", "the booking is already confirmed")
	}
	return state, nil
}

func applyBack(state models.BookingState) (models.BookingState, error) {
	for i, step := range models.Steps {
		if step == state.Step {
			if i == 0 {
				return state, newTransitionError("atStart", "already at the first step")
			}
			state.Step = models.Steps[i-1]
			return state, nil
		}
	}
	return state, newTransitionError("badStep", "unknown wizard step")
}

func applyPaymentSucceeded(state models.BookingState) (models.BookingState, error) {
	if state.Step != models.StepPayment {
		return state, newTransitionError("notAtPayment", "payment success is only accepted on the payment step")
	}
	state.Step = models.StepConfirmation
	return state, nil
}

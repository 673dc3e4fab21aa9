package wizard

import (
	"testing"

	"styleforage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_DefaultStartsAtService(t *testing.T) {
	state := NewState("")

	assert.Equal(t, models.StepService, state.Step)
	assert.Nil(t, state.SelectedService)
	assert.Empty(t, state.SelectedTimes)
}

func TestNewState_DeepLinkStartsAtDate(t *testing.T) {
	state := NewState("closet-edit")

	assert.Equal(t, models.StepDate, state.Step)
	require.NotNil(t, state.SelectedService)
	assert.Equal(t, "closet-edit", state.SelectedService.ID)
}

func TestNewState_UnknownDeepLinkFallsBackToService(t *testing.T) {
	state := NewState("hat-fitting")

	assert.Equal(t, models.StepService, state.Step)
	assert.Nil(t, state.SelectedService)
}

func TestApply_SelectService_AdvancesToDate(t *testing.T) {
	state := NewState("")

	next, err := Apply(state, models.Action{Type: models.ActionSelectService, ServiceID: "personal-shop"})

	require.NoError(t, err)
	assert.Equal(t, models.StepDate, next.Step)
	require.NotNil(t, next.SelectedService)
	assert.Equal(t, "personal-shop", next.SelectedService.ID)
}

func TestApply_SelectService_UnknownIDRejected(t *testing.T) {
	state := NewState("")

	next, err := Apply(state, models.Action{Type: models.ActionSelectService, ServiceID: "nope"})

	require.Error(t, err)
	assert.Equal(t, state, next)
}

func TestApply_SwitchingServiceClearsDateAndTimes(t *testing.T) {
	state := stateAtDetails(t)

	next, err := Apply(state, models.Action{Type: models.ActionSelectService, ServiceID: "style-refresh"})

	require.NoError(t, err)
	assert.Empty(t, next.SelectedDate)
	assert.Empty(t, next.SelectedTimes)
	assert.Equal(t, models.StepDate, next.Step)
}

func TestApply_ReselectingSameServiceKeepsDateAndTimes(t *testing.T) {
	state := stateAtDetails(t)

	next, err := Apply(state, models.Action{Type: models.ActionSelectService, ServiceID: "closet-edit"})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", next.SelectedDate)
	assert.Equal(t, []string{"9:00AM"}, next.SelectedTimes)
}

func TestApply_SelectDate_RequiresService(t *testing.T) {
	state := NewState("")

	next, err := Apply(state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})

	require.Error(t, err)
	assert.Equal(t, state, next)
}

func TestApply_SelectDate_RejectsBadFormat(t *testing.T) {
	state := NewState("closet-edit")

	_, err := Apply(state, models.Action{Type: models.ActionSelectDate, Date: "June 10th"})

	require.Error(t, err)
}

func TestApply_ChangingDateClearsTimes(t *testing.T) {
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})
	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})
	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "11:00AM"})
	require.Len(t, state.SelectedTimes, 2)

	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-11"})

	assert.Empty(t, state.SelectedTimes)
	assert.Equal(t, "2025-06-11", state.SelectedDate)
}

func TestApply_ReselectingSameDateKeepsTimes(t *testing.T) {
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})
	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})

	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})

	assert.Equal(t, []string{"9:00AM"}, state.SelectedTimes)
}

func TestApply_ToggleTime_RequiresDate(t *testing.T) {
	state := NewState("closet-edit")

	next, err := Apply(state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})

	require.Error(t, err)
	assert.Equal(t, state, next)
}

func TestApply_ToggleTime_RejectsUnavailableSlot(t *testing.T) {
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})

	next, err := Apply(state, models.Action{Type: models.ActionToggleTime, Time: "12:00PM"})

	require.Error(t, err)
	assert.Empty(t, next.SelectedTimes)
}

func TestApply_ToggleTime_AddsAndRemoves(t *testing.T) {
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})

	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})
	assert.Equal(t, []string{"9:00AM"}, state.SelectedTimes)

	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "2:00PM"})
	assert.Equal(t, []string{"9:00AM", "2:00PM"}, state.SelectedTimes)

	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})
	assert.Equal(t, []string{"2:00PM"}, state.SelectedTimes)
}

func TestApply_Next_DateStepBlockedWithoutTimes(t *testing.T) {
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})

	next, err := Apply(state, models.Action{Type: models.ActionNext})

	require.Error(t, err)
	assert.Equal(t, models.StepDate, next.Step, "step is unchanged when the guard fails")
}

func TestApply_Next_DetailsStepRequiresNameAndEmail(t *testing.T) {
	state := stateAtDetails(t)

	// Whitespace-only values do not pass the guard.
	state = mustApply(t, state, models.Action{
		Type:    models.ActionSetDetails,
		Details: &models.CustomerDetails{Name: "   ", Email: " "},
	})
	next, err := Apply(state, models.Action{Type: models.ActionNext})
	require.Error(t, err)
	assert.Equal(t, models.StepDetails, next.Step)

	state = mustApply(t, state, models.Action{
		Type:    models.ActionSetDetails,
		Details: &models.CustomerDetails{Name: "Jane Doe", Email: "jane@example.com"},
	})
	state = mustApply(t, state, models.Action{Type: models.ActionNext})
	assert.Equal(t, models.StepPayment, state.Step)
}

func TestApply_Next_NeverSkipsPastPayment(t *testing.T) {
	state := stateAtPayment(t)

	next, err := Apply(state, models.Action{Type: models.ActionNext})

	require.Error(t, err)
	assert.Equal(t, models.StepPayment, next.Step)
}

func TestApply_PaymentSucceeded_OnlyOnPaymentStep(t *testing.T) {
	state := stateAtDetails(t)

	next, err := Apply(state, models.Action{Type: models.ActionPaymentSucceeded})
	require.Error(t, err)
	assert.Equal(t, models.StepDetails, next.Step)

	state = stateAtPayment(t)
	state = mustApply(t, state, models.Action{Type: models.ActionPaymentSucceeded})
	assert.Equal(t, models.StepConfirmation, state.Step)
}

func TestApply_Back_StepsBackwardOneStage(t *testing.T) {
	state := stateAtPayment(t)

	state = mustApply(t, state, models.Action{Type: models.ActionBack})
	assert.Equal(t, models.StepDetails, state.Step)

	state = mustApply(t, state, models.Action{Type: models.ActionBack})
	assert.Equal(t, models.StepDate, state.Step)

	state = mustApply(t, state, models.Action{Type: models.ActionBack})
	assert.Equal(t, models.StepService, state.Step)

	_, err := Apply(state, models.Action{Type: models.ActionBack})
	require.Error(t, err)
}

func TestApply_UnknownActionRejected(t *testing.T) {
	state := NewState("")

	next, err := Apply(state, models.Action{Type: "teleport"})

	require.Error(t, err)
	assert.Equal(t, state, next)
}

func TestApply_StepStaysWithinDefinedValues(t *testing.T) {
	valid := map[models.Step]bool{}
	for _, s := range models.Steps {
		valid[s] = true
	}

	state := NewState("")
	actions := []models.Action{
		{Type: models.ActionNext},
		{Type: models.ActionSelectService, ServiceID: "closet-edit"},
		{Type: models.ActionToggleTime, Time: "9:00AM"},
		{Type: models.ActionSelectDate, Date: "2025-06-10"},
		{Type: models.ActionToggleTime, Time: "9:00AM"},
		{Type: models.ActionBack},
		{Type: models.ActionNext},
		{Type: models.ActionNext},
		{Type: models.ActionPaymentSucceeded},
		{Type: models.ActionSetDetails, Details: &models.CustomerDetails{Name: "Jane", Email: "j@e.com"}},
		{Type: models.ActionNext},
		{Type: models.ActionNext},
		{Type: models.ActionPaymentSucceeded},
	}
	for _, action := range actions {
		state, _ = Apply(state, action)
		assert.True(t, valid[state.Step], "step %q is not a defined stage", state.Step)
	}
}

// Full walk of the documented scenario: closet-edit on 2025-06-10 at 9:00AM
// for Jane Doe ends on a confirmation state carrying all display fields.
func TestApply_FullBookingScenario(t *testing.T) {
	state := NewState("")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectService, ServiceID: "closet-edit"})
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})
	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})
	state = mustApply(t, state, models.Action{Type: models.ActionNext})
	state = mustApply(t, state, models.Action{
		Type:    models.ActionSetDetails,
		Details: &models.CustomerDetails{Name: "Jane Doe", Email: "jane@example.com"},
	})
	state = mustApply(t, state, models.Action{Type: models.ActionNext})
	require.Equal(t, models.StepPayment, state.Step)

	state = mustApply(t, state, models.Action{Type: models.ActionPaymentSucceeded})

	assert.Equal(t, models.StepConfirmation, state.Step)
	require.NotNil(t, state.SelectedService)
	assert.Equal(t, "The Closet Edit", state.SelectedService.Title)
	assert.Equal(t, 250, state.SelectedService.Price)
	assert.Equal(t, "2025-06-10", state.SelectedDate)
	assert.Equal(t, []string{"9:00AM"}, state.SelectedTimes)
	assert.Equal(t, "jane@example.com", state.CustomerDetails.Email)
}

// --- helpers ---

func mustApply(t *testing.T, state models.BookingState, action models.Action) models.BookingState {
	t.Helper()
	next, err := Apply(state, action)
	require.NoError(t, err)
	return next
}

func stateAtDetails(t *testing.T) models.BookingState {
	t.Helper()
	state := NewState("closet-edit")
	state = mustApply(t, state, models.Action{Type: models.ActionSelectDate, Date: "2025-06-10"})
	state = mustApply(t, state, models.Action{Type: models.ActionToggleTime, Time: "9:00AM"})
	return mustApply(t, state, models.Action{Type: models.ActionNext})
}

func stateAtPayment(t *testing.T) models.BookingState {
	t.Helper()
	state := stateAtDetails(t)
	state = mustApply(t, state, models.Action{
		Type:    models.ActionSetDetails,
		Details: &models.CustomerDetails{Name: "Jane Doe", Email: "jane@example.com"},
	})
	return mustApply(t, state, models.Action{Type: models.ActionNext})
}

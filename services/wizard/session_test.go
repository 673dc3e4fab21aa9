package wizard

import (
	"context"
	"testing"
	"time"

	"styleforage/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*DefaultSessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionService(client, 30*time.Minute), mr
}

func TestSessionService_StartAndGet(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sessionID, state, err := svc.Start(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, models.StepService, state.Step)

	loaded, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSessionService_Start_DeepLink(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, state, err := svc.Start(context.Background(), "personal-shop")

	require.NoError(t, err)
	assert.Equal(t, models.StepDate, state.Step)
	require.NotNil(t, state.SelectedService)
	assert.Equal(t, "personal-shop", state.SelectedService.ID)
}

func TestSessionService_Get_UnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Do_PersistsTransition(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sessionID, _, err := svc.Start(ctx, "")
	require.NoError(t, err)

	state, err := svc.Do(ctx, sessionID, models.Action{Type: models.ActionSelectService, ServiceID: "closet-edit"})
	require.NoError(t, err)
	assert.Equal(t, models.StepDate, state.Step)

	loaded, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSessionService_Do_GuardFailureLeavesStoredStateUntouched(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sessionID, _, err := svc.Start(ctx, "closet-edit")
	require.NoError(t, err)

	// date -> details without a selected date or time must be rejected.
	_, err = svc.Do(ctx, sessionID, models.Action{Type: models.ActionNext})
	require.Error(t, err)
	var transition *TransitionError
	assert.ErrorAs(t, err, &transition)

	loaded, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepDate, loaded.Step)
}

func TestSessionService_SessionExpires(t *testing.T) {
	svc, mr := newTestSessionService(t)
	ctx := context.Background()

	sessionID, _, err := svc.Start(ctx, "")
	require.NoError(t, err)

	mr.FastForward(31 * time.Minute)

	_, err = svc.Get(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

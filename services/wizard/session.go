package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"styleforage/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionService owns wizard sessions. Each session is a single BookingState
// mutated only through Apply, so every guard lives in the reducer.
type SessionService interface {
	Start(ctx context.Context, serviceID string) (string, models.BookingState, error)
	Get(ctx context.Context, sessionID string) (models.BookingState, error)
	Do(ctx context.Context, sessionID string, action models.Action) (models.BookingState, error)
}

// DefaultSessionService keeps sessions as JSON blobs in Redis with a TTL.
// Expiry is the only lifecycle: nothing is durably stored.
type DefaultSessionService struct {
	Cache *redis.Client
	TTL   time.Duration
}

func NewSessionService(cache *redis.Client, ttl time.Duration) *DefaultSessionService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &DefaultSessionService{Cache: cache, TTL: ttl}
}

func sessionKey(id string) string {
	return "wizard:session:" + id
}

// Start creates a fresh session. serviceID may be empty; a valid one is the
// deep-link entry and starts the wizard at the date step.
func (s *DefaultSessionService) Start(ctx context.Context, serviceID string) (string, models.BookingState, error) {
	state := NewState(serviceID)
	sessionID := uuid.New().String()
	if err := s.save(ctx, sessionID, state); err != nil {
		return "", models.BookingState{}, err
	}
	return sessionID, state, nil
}

// Get loads a session's current state.
func (s *DefaultSessionService) Get(ctx context.Context, sessionID string) (models.BookingState, error) {
	return s.load(ctx, sessionID)
}

// Do applies one action to a session. A guard rejection leaves the stored
// state untouched and surfaces the TransitionError.
func (s *DefaultSessionService) Do(ctx context.Context, sessionID string, action models.Action) (models.BookingState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return models.BookingState{}, err
	}
	next, err := Apply(state, action)
	if err != nil {
		return state, err
	}
	if err := s.save(ctx, sessionID, next); err != nil {
		return state, err
	}
	return next, nil
}

func (s *DefaultSessionService) save(ctx context.Context, sessionID string, state models.BookingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(sessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (models.BookingState, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return models.BookingState{}, ErrSessionNotFound
	}
	if err != nil {
		return models.BookingState{}, fmt.Errorf("fetch booking session: %w", err)
	}
	var state models.BookingState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.BookingState{}, fmt.Errorf("parse booking session: %w", err)
	}
	return state, nil
}

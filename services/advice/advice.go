package advice

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MaxQueryLen bounds a single style question.
const MaxQueryLen = 500

// Static replies. Collaborator failures are never surfaced verbatim to the
// caller; these strings are the entire user-visible error model.
const (
	ReplyEmptyQuery = "Please ask me a style question!"
	ReplyTooLong    = "Your question is a bit long. Could you keep it under 500 characters?"
	ReplyNoTip      = "I couldn't come up with a tip right now, but let's chat during a session!"
	ReplyOffline    = "I'm having a brief wardrobe malfunction. Please try again later."
)

// ErrCollaborator marks an upstream failure. The reply returned alongside it
// is still the user-safe apology, never the raw cause.
var ErrCollaborator = errors.New("advice collaborator unavailable")

// Service answers one bounded style question at a time. No conversation
// memory is kept: each query is independent.
type Service interface {
	GetAdvice(ctx context.Context, query string) (string, error)
}

// DefaultAdviceService proxies queries to a generative collaborator.
// Generator may be nil when the collaborator is unconfigured; every query
// then gets the offline reply.
type DefaultAdviceService struct {
	Logger    *zap.Logger
	Generator TextGenerator
}

func NewAdviceService(logger *zap.Logger, generator TextGenerator) *DefaultAdviceService {
	return &DefaultAdviceService{Logger: logger, Generator: generator}
}

// GetAdvice maps every outcome to a static or collaborator-written reply.
// Empty and oversized queries short-circuit without touching the
// collaborator and return nil errors. The only non-nil error is
// ErrCollaborator, and even then the returned reply is the safe apology.
func (s *DefaultAdviceService) GetAdvice(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return ReplyEmptyQuery, nil
	}
	if utf8.RuneCountInString(query) > MaxQueryLen {
		return ReplyTooLong, nil
	}
	if s.Generator == nil {
		s.Logger.Error("GetAdvice: generative collaborator is not configured")
		return ReplyOffline, ErrCollaborator
	}

	text, err := s.Generator.GenerateContent(ctx, query)
	if err != nil {
		s.Logger.Error("GetAdvice: collaborator error", zap.Error(err))
		return ReplyOffline, ErrCollaborator
	}
	if strings.TrimSpace(text) == "" {
		return ReplyNoTip, nil
	}
	return text, nil
}

package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/j0lvera/eightball/internal/eightball"
	"github.com/j0lvera/eightball/internal/history"
	"github.com/j0lvera/eightball/internal/metrics"
	"github.com/j0lvera/eightball/internal/shake"
)

// ErrShakeTooSoon is returned when a shake lands inside the debounce window.
var ErrShakeTooSoon = errors.New("shake too soon")

// Service answers questions for chats and keeps their history.
type Service struct {
	ball      *eightball.Ball
	store     history.Store
	debouncer shake.Debouncer
	metrics   *metrics.Metrics
	limit     int
	logger    *zerolog.Logger
}

// NewService creates a Service. limit caps the entries returned by History.
func NewService(
	ball *eightball.Ball,
	store history.Store,
	debouncer shake.Debouncer,
	m *metrics.Metrics,
	limit int,
	logger *zerolog.Logger,
) *Service {
	return &Service{
		ball:      ball,
		store:     store,
		debouncer: debouncer,
		metrics:   m,
		limit:     limit,
		logger:    logger,
	}
}

// Ask answers question and records the result. Recording failures are logged
// and never hide the answer.
func (s *Service) Ask(ctx context.Context, chatID int64, question string) history.Entry {
	question = strings.TrimSpace(question)

	response, w := s.ball.AskWeighed(question)

	s.metrics.RecordWeights(w)
	s.metrics.RecordAnswer(metrics.SourceAsk, response)

	s.logger.Debug().
		Int64("chat_id", chatID).
		Int("positive_hits", w.PositiveHits).
		Int("negative_hits", w.NegativeHits).
		Int("uncertain_hits", w.UncertainHits).
		Str("sentiment", response.Sentiment.String()).
		Msg("question answered")

	return s.record(ctx, history.NewEntry(chatID, question, response))
}

// Shake answers without a question. It returns ErrShakeTooSoon when the
// previous shake in the chat was too recent.
func (s *Service) Shake(ctx context.Context, chatID int64) (history.Entry, error) {
	allowed, err := s.debouncer.Allow(ctx, chatID)
	if err != nil {
		// Fail open.
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("unable to check shake debounce")
		allowed = true
	}
	if !allowed {
		s.metrics.RecordDebounced()
		return history.Entry{}, ErrShakeTooSoon
	}

	response := s.ball.Shake()
	s.metrics.RecordAnswer(metrics.SourceShake, response)

	s.logger.Debug().
		Int64("chat_id", chatID).
		Str("sentiment", response.Sentiment.String()).
		Msg("ball shaken")

	return s.record(ctx, history.NewEntry(chatID, "", response)), nil
}

func (s *Service) record(ctx context.Context, entry history.Entry) history.Entry {
	if err := s.store.Add(ctx, entry); err != nil {
		s.logger.Error().Err(err).Int64("chat_id", entry.ChatID).Msg("unable to record history entry")
	}
	return entry
}

// History returns the most recent entries of a chat, newest first.
func (s *Service) History(ctx context.Context, chatID int64) ([]history.Entry, error) {
	entries, err := s.store.List(ctx, chatID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("unable to list history: %w", err)
	}
	return entries, nil
}

// Latest returns the newest entry of a chat, if any.
func (s *Service) Latest(ctx context.Context, chatID int64) (history.Entry, bool, error) {
	entries, err := s.store.List(ctx, chatID, 1)
	if err != nil {
		return history.Entry{}, false, fmt.Errorf("unable to load latest entry: %w", err)
	}
	if len(entries) == 0 {
		return history.Entry{}, false, nil
	}
	return entries[0], true, nil
}

// Clear forgets a chat's history.
func (s *Service) Clear(ctx context.Context, chatID int64) error {
	if err := s.store.Clear(ctx, chatID); err != nil {
		return fmt.Errorf("unable to clear history: %w", err)
	}
	s.logger.Info().Int64("chat_id", chatID).Msg("history cleared")
	return nil
}

package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/j0lvera/eightball/internal/db"
	"github.com/j0lvera/eightball/internal/eightball"
)

// PostgresStore keeps histories in the history_entries table.
type PostgresStore struct {
	client *db.Client
}

// NewPostgresStore creates a store backed by client.
func NewPostgresStore(client *db.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

// Add inserts an entry
func (s *PostgresStore) Add(ctx context.Context, entry Entry) error {
	_, err := s.client.Pool.Exec(ctx, `
		INSERT INTO history_entries (id, chat_id, question, response, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.ChatID, entry.Question, entry.Response.Text,
		entry.Response.Sentiment.String(), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// List returns the most recent entries for a chat, newest first
func (s *PostgresStore) List(ctx context.Context, chatID int64, limit int) ([]Entry, error) {
	query := `
		SELECT id, chat_id, question, response, sentiment, created_at
		FROM history_entries
		WHERE chat_id = $1
		ORDER BY created_at DESC, id DESC
	`
	args := []any{chatID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.client.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan history entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.CollectableRow) (Entry, error) {
	var (
		e         Entry
		id        pgtype.UUID
		sentiment string
	)
	if err := row.Scan(&id, &e.ChatID, &e.Question, &e.Response.Text, &sentiment, &e.CreatedAt); err != nil {
		return Entry{}, err
	}
	e.ID = id.Bytes

	s, err := eightball.ParseSentiment(sentiment)
	if err != nil {
		return Entry{}, err
	}
	e.Response.Sentiment = s
	return e, nil
}

// Clear deletes every entry for a chat
func (s *PostgresStore) Clear(ctx context.Context, chatID int64) error {
	if _, err := s.client.Pool.Exec(ctx, `DELETE FROM history_entries WHERE chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("failed to clear history entries: %w", err)
	}
	return nil
}

// Len counts the entries for a chat
func (s *PostgresStore) Len(ctx context.Context, chatID int64) (int, error) {
	var n int
	err := s.client.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM history_entries WHERE chat_id = $1`, chatID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count history entries: %w", err)
	}
	return n, nil
}

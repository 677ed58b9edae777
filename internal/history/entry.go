package history

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/j0lvera/eightball/internal/eightball"
)

// ShakenLabel stands in for the question of an entry produced by a shake.
const ShakenLabel = "(shaken)"

// Entry is one answered question in a chat's history.
type Entry struct {
	ID        uuid.UUID
	ChatID    int64
	Question  string // Empty when the answer came from a shake
	Response  eightball.Response
	CreatedAt time.Time
}

// NewEntry stamps a fresh entry with an ID and the current time.
func NewEntry(chatID int64, question string, response eightball.Response) Entry {
	return Entry{
		ID:        uuid.New(),
		ChatID:    chatID,
		Question:  question,
		Response:  response,
		CreatedAt: time.Now(),
	}
}

// Shaken reports whether the entry was produced without a question.
func (e Entry) Shaken() bool {
	return strings.TrimSpace(e.Question) == ""
}

// Label is the question text, or ShakenLabel for shakes.
func (e Entry) Label() string {
	if e.Shaken() {
		return ShakenLabel
	}
	return e.Question
}

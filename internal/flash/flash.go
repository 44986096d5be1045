// Package flash carries one-shot inline messages across a redirect.
package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const valueName = "flash"

// maxPending drops a message whose redirect was never followed, so it does
// not surface on some later page.
const maxPending = time.Minute

// Kind is the visual style of a message.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Store is where messages live between requests. *session.Session
// implements it.
type Store interface {
	Value(ctx context.Context, name string) (string, bool, error)
	SetValue(ctx context.Context, name, value string) error
	ClearValue(ctx context.Context, name string) error
}

// Message is a flash message ready for rendering.
type Message struct {
	Kind Kind
	Text string
	// DismissAfterMS is how long the page should keep the message visible.
	DismissAfterMS int64
}

type stored struct {
	Kind     Kind      `json:"kind"`
	Text     string    `json:"text"`
	StoredAt time.Time `json:"stored_at"`
}

// Flasher writes and reads messages. A message stays on screen for the TTL
// counted from the render that shows it.
type Flasher struct {
	ttl time.Duration
	now func() time.Time
}

// New creates a Flasher whose messages are dismissed ttl after display.
func New(ttl time.Duration) *Flasher {
	return &Flasher{ttl: ttl, now: time.Now}
}

// Put stores a message, replacing any pending one.
func (f *Flasher) Put(ctx context.Context, s Store, kind Kind, text string) error {
	raw, err := json.Marshal(stored{Kind: kind, Text: text, StoredAt: f.now()})
	if err != nil {
		return fmt.Errorf("encode flash: %w", err)
	}
	return s.SetValue(ctx, valueName, string(raw))
}

// Success stores a success message.
func (f *Flasher) Success(ctx context.Context, s Store, text string) error {
	return f.Put(ctx, s, Success, text)
}

// Error stores an error message.
func (f *Flasher) Error(ctx context.Context, s Store, text string) error {
	return f.Put(ctx, s, Error, text)
}

// Pop returns the pending message and removes it. It returns nil when there
// is none or it has waited longer than maxPending.
func (f *Flasher) Pop(ctx context.Context, s Store) (*Message, error) {
	raw, ok, err := s.Value(ctx, valueName)
	if err != nil || !ok {
		return nil, err
	}
	if err := s.ClearValue(ctx, valueName); err != nil {
		return nil, err
	}

	var msg stored
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return nil, fmt.Errorf("decode flash: %w", err)
	}

	if f.now().Sub(msg.StoredAt) > maxPending {
		return nil, nil
	}
	return &Message{Kind: msg.Kind, Text: msg.Text, DismissAfterMS: f.ttl.Milliseconds()}, nil
}

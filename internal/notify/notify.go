// Package notify tells recipients that a clipboard is waiting for them. The
// record store stays the source of truth; notifications are best effort.
package notify

import (
	"context"
	"time"
)

// SubjectPrefix is followed by the recipient login.
const SubjectPrefix = "sharenodes.transfers."

// Event is published once per recipient after their record was written.
type Event struct {
	SenderLogin      string    `json:"sender_login"`
	DestinationLogin string    `json:"destination_login"`
	ArtifactID       string    `json:"artifact_id"`
	SubmittedAt      time.Time `json:"submitted_at"`
	Note             string    `json:"note,omitempty"`
}

// Subject returns the subject a recipient listens on.
func Subject(login string) string {
	return SubjectPrefix + login
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
	Close()
}

// Nop drops every event. Used when no notification server is configured.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }
func (Nop) Close()                              {}

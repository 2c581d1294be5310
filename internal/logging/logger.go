// Package logging is the structured logger handed to the send and inbox
// flows, the CLI and the seeding tool.
package logging

import "context"

// Logger takes a message plus alternating keys and values. The flows stick to
// a few keys so lines can be grepped across runs: artifact_id, recipient,
// login, sender.
//
//	log.Info(ctx, "clipboard sent", "artifact_id", id, "recipients", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for failures that do not fail the operation, such as a missed
	// notification or a dangling sender.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	With(args ...any) Logger
}

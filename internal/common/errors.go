// Package common defines shared constants and sentinel errors used across
// ShareNodes components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrStoreUnavailable = errors.New("record store unavailable")

	// Send flow errors.
	ErrNoRecipients    = errors.New("no user selected")
	ErrNothingSelected = errors.New("nothing selected to export")
	ErrExportFailed    = errors.New("export failed")

	// Inbox flow errors.
	ErrDanglingReference = errors.New("sender no longer exists in directory")
	ErrImportFailed      = errors.New("import failed")
	ErrInvalidArtifactID = errors.New("invalid artifact id")

	// Notification errors.
	ErrNotifyFailed = errors.New("notification failed")
)

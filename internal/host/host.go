// Package host abstracts the compositing application that owns the node
// selection. The send flow asks it to export the selection to a file and the
// inbox flow asks it to import an artifact back into the current script.
package host

import "context"

// Host is the boundary to the compositing application.
type Host interface {
	// HasSelection reports whether anything is selected for export.
	HasSelection() bool
	// Export writes the current selection to path, creating or replacing it.
	Export(ctx context.Context, path string) error
	// Import merges the artifact at path into the current script.
	Import(ctx context.Context, path string) error
}

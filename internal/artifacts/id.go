// Package artifacts generates and checks clipboard artifact identifiers.
package artifacts

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/google/uuid"
)

// newTimeUUID is a seam for tests.
var newTimeUUID = uuid.NewUUID

// NewID returns a fresh 128-bit artifact identifier in canonical hyphenated
// form. A time-based (version 1) UUID is preferred; if the node id or clock
// cannot be read a random (version 4) one is used instead.
func NewID() string {
	id, err := newTimeUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Validate rejects identifiers that could escape the storage root or are
// not UUIDs at all. Records written by older tools may carry any UUID
// version, so only the shape is checked.
func Validate(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", common.ErrInvalidArtifactID, id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q: %w", common.ErrInvalidArtifactID, id, err)
	}
	return nil
}

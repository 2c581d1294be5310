package models

import "time"

// TransferRecord is one clipboard addressed to one recipient. A send with N
// recipients produces N records sharing ArtifactID and SubmittedAt.
// Records are immutable once written.
type TransferRecord struct {
	SenderLogin      string    `bson:"sender_login"`
	DestinationLogin string    `bson:"destination_login"`
	SubmittedAt      time.Time `bson:"submitted_at"`
	ArtifactID       string    `bson:"artifact_id"`
	Note             string    `bson:"note"`
}

// InboxItem is a transfer record joined with its sender's profile and a
// coarse age label, ready for display.
type InboxItem struct {
	Record TransferRecord
	Sender UserProfile
	// SenderMissing is set when the sender no longer resolves and Sender is
	// a placeholder.
	SenderMissing bool
	Recency       string
}

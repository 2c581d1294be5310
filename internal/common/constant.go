package common

// DefaultArtifactExt is the file extension of exported clipboard artifacts.
const DefaultArtifactExt = ".nk"

// Collection (table) names shared by all record store backends.
const (
	UsersCollection     = "users"
	TransfersCollection = "transfers"
)

// UnknownSenderName is shown in place of a sender that no longer resolves.
const UnknownSenderName = "<unknown user>"

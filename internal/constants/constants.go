package constants

// Password rules
const (
	MinPasswordLength = 6
	BcryptCost        = 10
)

// Session
const (
	SessionCookieName = "tracker_session"
	ContextKeyUserID  = "user_id"
)

// Search
const (
	SearchResultLimit = 10
)

// Defaults applied when optional fields are omitted
const (
	DefaultUserRole = "Artist"
	DefaultFileType = "images"
	DefaultFilename = "untitled"
)

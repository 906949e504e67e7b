package keyresult

// Key-result status is free text; these are the values the UI offers.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPaused    = "paused"
)

const DefaultStatus = StatusActive

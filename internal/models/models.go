package models

// User represents a registered account
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Activity is a user-defined countable goal, e.g. "push-ups" with a
// target of 50.
type Activity struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	TargetCount int64  `json:"target_count"`
}

// Event is a single count recorded against an activity. The timestamp is
// stored as text; newly created events are stamped in RFC 3339 UTC, but
// rows written by older deployments may carry a local-time format.
type Event struct {
	ID         int64  `json:"id"`
	ActivityID int64  `json:"activity_id"`
	Count      int64  `json:"count"`
	Timestamp  string `json:"timestamp"`
}

package store

import "context"

// Storage keys for the five persisted values. The _v1 suffix leaves room
// for schema migration by key renaming.
const (
	KeyMembers    = "simm_members_db_v1"
	KeyAttendance = "simm_attendance_db_v1"
	KeyActivities = "simm_activities_db_v1"
	KeySchedules  = "simm_schedule_db_v1"
	KeyWebAppURL  = "simm_webapp_url_v1"
)

// Store is the local persistent store: key to full-snapshot value, no
// deltas. A Save replaces the entire value under its key.
type Store interface {
	// Load returns the value under key, or nil when absent
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the value under key
	Save(ctx context.Context, key string, value []byte) error
}

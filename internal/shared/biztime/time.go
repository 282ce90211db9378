// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC. Persisted timestamps read back
// from the database must go through this before comparison so expiry checks
// work regardless of how the driver materialized the value.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

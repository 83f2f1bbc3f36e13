// Package maintenance holds the one-shot administrative operations that
// run outside the HTTP layer, directly against the store.
package maintenance

import "time"

// localTimeLayout is the format older deployments used for event
// timestamps ("YYYY-MM-DD HH:MM:SS", local time).
const localTimeLayout = "2006-01-02 15:04:05"

// ConvertToLocal rewrites an RFC 3339 timestamp (explicit UTC or offset)
// into the local-time layout. Strings that do not parse as RFC 3339 are
// assumed to be local already and returned unchanged with ok=false.
// Parsing instead of substring-matching for 'Z' or '-' is what keeps an
// already-local "2024-01-01 00:00:00" from being rewritten twice.
func ConvertToLocal(timestamp string) (string, bool) {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp, false
	}
	return t.Local().Format(localTimeLayout), true
}

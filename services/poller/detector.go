package poller

import "time"

// IsChanged reports whether a fetched publication date warrants a
// notification. The rule is strict equality against the stored checkpoint,
// not ordering: an absent checkpoint, or one differing in either direction,
// counts as changed. A republished older item therefore notifies again.
func IsChanged(stored *time.Time, fetched time.Time) bool {
	return stored == nil || !stored.Equal(fetched)
}

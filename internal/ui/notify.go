package ui

import "time"

// notice is a transient status message. It carries its own expiry instant so
// the render pass can treat a stale notice as absent without mutating
// anything; expiry is a pure query against the current clock.
type notice struct {
	message string
	until   time.Time
}

func newNotice(message string, now time.Time, lifetime time.Duration) notice {
	return notice{message: message, until: now.Add(lifetime)}
}

// expired reports whether the notice's visible lifetime has elapsed.
func (n notice) expired(now time.Time) bool {
	return !now.Before(n.until)
}

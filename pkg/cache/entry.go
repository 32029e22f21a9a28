package cache

import (
	"time"
)

// DefaultTTL is the fixed lifetime of a cached page. Staleness of a page is
// bounded by this TTL or by an explicit invalidation, whichever comes first.
const DefaultTTL = 5 * time.Minute

// Entry represents one cached page snapshot.
type Entry struct {
	// Data is the serialized page payload (JSON).
	Data []byte `json:"data"`

	// CachedAt is when the snapshot was taken.
	CachedAt time.Time `json:"cached_at"`

	// Expires is when the snapshot becomes stale.
	Expires time.Time `json:"expires"`
}

// NewEntry creates an entry for the given payload with the default TTL.
func NewEntry(data []byte) *Entry {
	now := time.Now()
	return &Entry{
		Data:     data,
		CachedAt: now,
		Expires:  now.Add(DefaultTTL),
	}
}

// IsExpired returns true if the entry has expired.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

package attendance

import "context"

// EntryStore persists the whole attendance log as one blob, newest entry first.
type EntryStore interface {
	// Load returns the stored log; an absent or unreadable blob yields an empty log
	Load(ctx context.Context) ([]Entry, error)

	// Append adds entries in the order given; the last one becomes the newest
	Append(ctx context.Context, entries ...Entry) error

	// Clear discards the entire log
	Clear(ctx context.Context) error
}

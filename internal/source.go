package internal

import "context"

// MessageSource is the capability a sync loop polls for new conversation
// messages. Each Poll is a fresh bounded fetch, not a long-lived stream:
// it returns every candidate message currently visible, oldest first within
// a session, and the caller's seen cache provides idempotency. A failed
// poll must leave any internal cursor state unchanged.
type MessageSource interface {
	// Poll fetches the current batch of candidate messages. Individual
	// unreadable or malformed items are skipped, not returned as errors;
	// an error means the source as a whole was unreachable.
	Poll(ctx context.Context) ([]Message, error)

	// Name identifies the strategy for logging and task provenance
	Name() string
}

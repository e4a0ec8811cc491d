package internal

import (
	"context"
	"fmt"
	"time"
)

// SyncLoop drives the transcript-to-task pipeline on a fixed timer:
// poll the source, extract and classify new messages, dedup against the
// seen cache, and dispatch discovered tasks to the store.
//
// Scheduling policy: fixed-interval with no backoff. A failed poll is simply
// retried on the next tick, indefinitely. Messages are marked seen right
// after evaluation, before dispatch, so delivery is at-most-once: a failed
// dispatch is logged and dropped, never re-extracted.
//
// All state (cache, source cursors) is owned by this instance and mutated
// only from Run's goroutine, so no locking is needed. Running two loops
// against the same sessions would double-dispatch and is unsupported.
type SyncLoop struct {
	source   MessageSource
	store    *StoreClient
	cache    *SeenCache
	interval time.Duration
	origin   string // value stamped into the dispatched task's source field
}

// PollStats summarizes one completed poll cycle
type PollStats struct {
	Messages   int // messages returned by the source
	Skipped    int // already in the seen cache
	Extracted  int // messages that yielded a task phrase
	Dispatched int // tasks accepted by the store
	Failed     int // dispatch failures (logged and dropped)
	Evicted    int // cache entries evicted after the batch
}

// NewSyncLoop assembles a loop over the given source, store, and cache.
// Non-positive intervals fall back to the default.
func NewSyncLoop(source MessageSource, store *StoreClient, cache *SeenCache, interval time.Duration) *SyncLoop {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SyncLoop{
		source:   source,
		store:    store,
		cache:    cache,
		interval: interval,
		origin:   "taskwatch:" + source.Name(),
	}
}

// Run probes the store once and then cycles until the context is canceled.
// A failed startup probe is fatal and returned to the caller; after that,
// source and dispatch failures only ever cost the current cycle.
func (l *SyncLoop) Run(ctx context.Context) error {
	if err := l.store.Ping(ctx); err != nil {
		return fmt.Errorf("task store connectivity check failed: %w", err)
	}
	LogInfo("connected to task store at %s, polling %s every %s", l.store.BaseURL(), l.source.Name(), l.interval)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			LogInfo("sync loop stopping: %v", ctx.Err())
			return nil
		case <-ticker.C:
			stats, err := l.RunOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				LogError("poll failed, retrying next tick: %v", err)
				continue
			}
			if stats.Dispatched > 0 || stats.Failed > 0 {
				LogInfo("poll: %d messages, %d new, %d extracted, %d dispatched, %d failed",
					stats.Messages, stats.Messages-stats.Skipped, stats.Extracted, stats.Dispatched, stats.Failed)
			} else {
				LogDebug("poll: %d messages, %d new, nothing to dispatch",
					stats.Messages, stats.Messages-stats.Skipped)
			}
		}
	}
}

// RunOnce executes a single poll cycle: Polling, Extracting, Dispatching,
// then cache eviction. Exposed so a cycle can be driven directly in tests.
func (l *SyncLoop) RunOnce(ctx context.Context) (PollStats, error) {
	var stats PollStats

	messages, err := l.source.Poll(ctx)
	if err != nil {
		return stats, err
	}
	stats.Messages = len(messages)

	var tasks []ExtractedTask
	for _, msg := range messages {
		key := msg.Key()
		if l.cache.Seen(key) {
			stats.Skipped++
			continue
		}

		phrase, found := ExtractTask(msg.Content)
		// Mark immediately after evaluation, whatever the outcome, so the
		// message is never evaluated again by this instance.
		l.cache.Mark(key)

		if !found {
			continue
		}

		task := ExtractedTask{
			Text:        phrase,
			Priority:    ClassifyPriority(phrase, msg.Content),
			SessionKey:  msg.SessionKey,
			MessageID:   msg.ID,
			ExtractedAt: time.Now(),
		}
		stats.Extracted++
		tasks = append(tasks, task)
	}

	for _, task := range tasks {
		todo, err := l.store.DispatchTask(ctx, task, l.origin)
		if err != nil {
			stats.Failed++
			LogError("%v", &DispatchError{SessionKey: task.SessionKey, MessageID: task.MessageID, Err: err})
			continue
		}
		stats.Dispatched++
		LogInfo("created todo %s [%s] %q (from %s/%s)", todo.ID, task.Priority, task.Text, task.SessionKey, task.MessageID)
	}

	// Evict with the batch size as the floor: the transcripts strategy
	// re-delivers the whole directory every poll, so dropping ids from the
	// current window would turn straight into duplicate dispatches.
	stats.Evicted = l.cache.Evict(stats.Messages)
	return stats, nil
}

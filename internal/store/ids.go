package store

import (
	"context"
	"fmt"
	"sync"
)

// idSource is any store that can report the highest numeric ID suffix.
type idSource interface {
	MaxIDWithPrefix(ctx context.Context, prefix string) (int, error)
}

// IDAllocator hands out display IDs like M001 or TECH-007: prefix plus a
// zero-padded sequence number one past the current maximum. The mutex
// serializes allocations within this process; concurrent processes against
// the same database can still collide and one insert will fail on the
// primary key.
type IDAllocator struct {
	mu sync.Mutex
}

// Next returns the next unused ID for the given prefix.
func (a *IDAllocator) Next(ctx context.Context, src idSource, prefix string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, err := src.MaxIDWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("store: allocate id with prefix %q: %w", prefix, err)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}

package adapter

import "context"

// CacheInvalidator drops the cached public views for a menu after a
// successful mutation, so the next public render sees fresh data. This is
// the refresh point the UI relies on; already-fetched dashboard lists
// refetch on their own.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, menuID string) error
}

// NopInvalidator is used when no cache is configured.
type NopInvalidator struct{}

func (NopInvalidator) Invalidate(ctx context.Context, menuID string) error { return nil }

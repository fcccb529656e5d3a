package services

import (
	"context"
)

const toolViewsKeyPrefix = "tool_views:"

// Counter is the subset of RedisCache the view counter needs
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
	Counter(ctx context.Context, key string) (int64, error)
}

// ViewCounter counts tool page views
type ViewCounter struct {
	store Counter
}

// NewViewCounter creates a view counter backed by store
func NewViewCounter(store Counter) *ViewCounter {
	return &ViewCounter{store: store}
}

// Record adds one view for a tool
func (v *ViewCounter) Record(ctx context.Context, slug string) error {
	_, err := v.store.Increment(ctx, toolViewsKeyPrefix+slug)
	return err
}

// Views returns the number of recorded views for a tool
func (v *ViewCounter) Views(ctx context.Context, slug string) (int64, error) {
	return v.store.Counter(ctx, toolViewsKeyPrefix+slug)
}

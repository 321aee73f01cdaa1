package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/amicly/appearance/internal/domain"
)

// FakeStore is an in-memory PreferenceStore with failure injection and hooks
// for ordering concurrent operations in tests.
type FakeStore struct {
	mu     sync.Mutex
	values map[string]string

	// GetErr and SetErr, when set, are returned instead of touching values.
	GetErr error
	SetErr error

	// BeforeGet and BeforeSet run before the operation, outside the lock.
	// Tests use them to block a call until another has finished.
	BeforeGet func(ctx context.Context, key string)
	BeforeSet func(ctx context.Context, key, value string)

	gets atomic.Int64
	sets atomic.Int64
}

// NewFakeStore returns a FakeStore seeded with values.
func NewFakeStore(values map[string]string) *FakeStore {
	f := &FakeStore{values: make(map[string]string)}
	for k, v := range values {
		f.values[k] = v
	}
	return f
}

// Get runs BeforeGet, then returns GetErr or the stored value.
func (f *FakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.gets.Add(1)
	if f.BeforeGet != nil {
		f.BeforeGet(ctx, key)
	}
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

// Set runs BeforeSet, then returns SetErr or stores value.
func (f *FakeStore) Set(ctx context.Context, key, value string) error {
	f.sets.Add(1)
	if f.BeforeSet != nil {
		f.BeforeSet(ctx, key, value)
	}
	if f.SetErr != nil {
		return f.SetErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

// Delete removes key unless ctx is done.
func (f *FakeStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

// Close is a no-op.
func (f *FakeStore) Close() error { return nil }

// Value returns the raw stored value for key.
func (f *FakeStore) Value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// Gets returns how many times Get was called.
func (f *FakeStore) Gets() int64 { return f.gets.Load() }

// Sets returns how many times Set was called.
func (f *FakeStore) Sets() int64 { return f.sets.Load() }

var _ domain.PreferenceStore = (*FakeStore)(nil)

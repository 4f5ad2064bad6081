package cache

import (
	"bytes"
	"context"
	"time"
)

var _ Cache = (*Memory)(nil)

type memoryItem struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Memory is an in-process Cache. Stored values are copied on the way in and
// out.
type Memory struct {
	lru *LRUCache[string, memoryItem]
	now func() time.Time
}

// MemoryOption configures Memory.
type MemoryOption func(*Memory)

// WithClock sets the time source for expiry checks.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory creates a Memory cache holding at most capacity entries.
func NewMemory(capacity int, opts ...MemoryOption) *Memory {
	m := &Memory{
		lru: NewLRUCache[string, memoryItem](capacity),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMemoryFromConfig creates a Memory cache sized by cfg.
func NewMemoryFromConfig(cfg Config) *Memory {
	return NewMemory(cfg.Capacity)
}

// Get implements Cache.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	item, ok := m.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && !m.now().Before(item.expiresAt) {
		m.lru.Remove(key)
		return nil, ErrCacheMiss
	}
	return bytes.Clone(item.value), nil
}

// Set implements Cache.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	item := memoryItem{value: bytes.Clone(value)}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}
	m.lru.Put(key, item)
	return nil
}

// Delete implements Cache.
func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	return m.lru.Len()
}

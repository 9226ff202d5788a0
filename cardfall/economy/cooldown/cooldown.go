// Package cooldown tracks per-user command cooldowns and short-lived
// pending confirmations in memory.
package cooldown

import (
	"context"
	"sync"
	"time"
)

type Manager struct {
	cooldowns  sync.Map // "userID:key" -> time.Time next allowed use
	pending    sync.Map // "userID:key" -> pendingEntry
	pendingTTL time.Duration
}

type pendingEntry struct {
	value   any
	expires time.Time
}

func NewManager(pendingTTL time.Duration) *Manager {
	return &Manager{pendingTTL: pendingTTL}
}

func mapKey(userID, key string) string {
	return userID + ":" + key
}

// Try consumes a cooldown slot. When the user is still cooling down it
// returns false with the remaining wait; otherwise it arms the cooldown
// and returns true.
func (m *Manager) Try(userID, key string, period time.Duration) (bool, time.Duration) {
	k := mapKey(userID, key)
	now := time.Now()
	if v, ok := m.cooldowns.Load(k); ok {
		if next := v.(time.Time); now.Before(next) {
			return false, time.Until(next)
		}
	}
	m.cooldowns.Store(k, now.Add(period))
	return true, 0
}

// Remaining reports the wait left without consuming anything.
func (m *Manager) Remaining(userID, key string) time.Duration {
	if v, ok := m.cooldowns.Load(mapKey(userID, key)); ok {
		if next := v.(time.Time); time.Now().Before(next) {
			return time.Until(next)
		}
	}
	return 0
}

// Clear lifts a cooldown early, e.g. when the guarded action failed
// before doing anything.
func (m *Manager) Clear(userID, key string) {
	m.cooldowns.Delete(mapKey(userID, key))
}

// SetPending stages a value awaiting confirmation. It replaces any
// previous pending value under the same key.
func (m *Manager) SetPending(userID, key string, value any) {
	m.pending.Store(mapKey(userID, key), pendingEntry{
		value:   value,
		expires: time.Now().Add(m.pendingTTL),
	})
}

// TakePending removes and returns a staged value. A value can be taken
// exactly once; expired values read as absent.
func (m *Manager) TakePending(userID, key string) (any, bool) {
	k := mapKey(userID, key)
	v, ok := m.pending.LoadAndDelete(k)
	if !ok {
		return nil, false
	}
	entry := v.(pendingEntry)
	if time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

// DropPending discards a staged value without returning it.
func (m *Manager) DropPending(userID, key string) {
	m.pending.Delete(mapKey(userID, key))
}

func (m *Manager) cleanupExpired() {
	now := time.Now()
	m.cooldowns.Range(func(key, value any) bool {
		if now.After(value.(time.Time)) {
			m.cooldowns.Delete(key)
		}
		return true
	})
	m.pending.Range(func(key, value any) bool {
		if now.After(value.(pendingEntry).expires) {
			m.pending.Delete(key)
		}
		return true
	})
}

// StartCleanupRoutine evicts expired entries until ctx is cancelled.
func (m *Manager) StartCleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.cleanupExpired()
			}
		}
	}()
}

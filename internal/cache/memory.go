package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory 进程内 TTL 缓存，过期判断基于注入的时钟
type Memory struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries map[string]entry
}

// NewMemory 创建缓存；clock 为 nil 时使用真实时钟
func NewMemory(clock clockwork.Clock) *Memory {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Memory{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// Get 命中且未过期时返回值；过期条目视为未命中，由 DeleteExpired 清理
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || !m.clock.Now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set 写入条目，ttl <= 0 时不缓存
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: m.clock.Now().Add(ttl)}
}

// Delete 删除条目
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len 当前条目数（含尚未清理的过期条目）
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// DeleteExpired 清理所有过期条目，返回清理数量
func (m *Memory) DeleteExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.clock.Now()
	removed := 0
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// StartJanitor 按 interval 周期清理过期条目，ctx 取消后退出
func (m *Memory) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := m.clock.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				m.DeleteExpired()
			}
		}
	}()
}

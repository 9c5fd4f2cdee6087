package content

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	workflowport "ai-content-writer/internal/workflow/port"
	apperrors "ai-content-writer/pkg/errors"
	"ai-content-writer/pkg/logger"
	"ai-content-writer/pkg/metrics"
)

// RegistryOptions TTL 为 0 表示不过期，MaxSessions 为 0 表示不限数量
type RegistryOptions struct {
	TTL         time.Duration
	MaxSessions int
}

// Registry 进程内的会话表，不落盘
type Registry struct {
	gen  workflowport.TextGenerator
	opts RegistryOptions
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(gen workflowport.TextGenerator, opts RegistryOptions) *Registry {
	return &Registry{
		gen:      gen,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create 新建 Idle 会话；达到上限时淘汰最久未活动的会话
func (r *Registry) Create() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	if r.opts.MaxSessions > 0 && len(r.sessions) >= r.opts.MaxSessions {
		if !r.evictOldestLocked() {
			return nil, apperrors.ErrServiceUnavailable.WithDetail("session limit reached")
		}
	}

	s := newSession(uuid.NewString(), r.gen, r.now)
	r.sessions[s.id] = s
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	return s, nil
}

// Get 过期会话视为不存在
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	if r.expiredLocked(s) {
		r.removeLocked(id)
		return nil, apperrors.ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	r.removeLocked(id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep 清理过期会话，返回清理数量
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

// Run 按间隔清理过期会话，直到 ctx 结束
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.Debug(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}

func (r *Registry) sweepLocked() int {
	removed := 0
	for id, s := range r.sessions {
		if r.expiredLocked(s) {
			r.removeLocked(id)
			removed++
		}
	}
	return removed
}

func (r *Registry) evictOldestLocked() bool {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, s := range r.sessions {
		at, evictable := s.idleSince()
		if !evictable {
			continue
		}
		if oldestID == "" || at.Before(oldestAt) {
			oldestID, oldestAt = id, at
		}
	}
	if oldestID == "" {
		return false
	}
	r.removeLocked(oldestID)
	return true
}

func (r *Registry) expiredLocked(s *Session) bool {
	if r.opts.TTL <= 0 {
		return false
	}
	at, evictable := s.idleSince()
	return evictable && r.now().Sub(at) > r.opts.TTL
}

func (r *Registry) removeLocked(id string) {
	delete(r.sessions, id)
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
}

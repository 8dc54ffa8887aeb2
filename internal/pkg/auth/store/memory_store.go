package store

import (
	"sync"
	"time"

	"github.com/sober-studio/medtrack/internal/pkg/auth/model"
)

var _ RevocationStore = (*MemoryRevocationStore)(nil)

// MemoryRevocationStore 基于内存的撤销令牌存储，仅在单进程内有效，重启后丢失
type MemoryRevocationStore struct {
	mu     sync.RWMutex
	tokens map[string]*model.RevokedToken
	now    func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		tokens: make(map[string]*model.RevokedToken),
		now:    time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(token string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; ok {
		return
	}
	s.tokens[token] = &model.RevokedToken{
		TokenStr:  token,
		ExpiresAt: expiresAt,
		RevokedAt: s.now(),
	}
}

func (s *MemoryRevocationStore) IsRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *MemoryRevocationStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, t := range s.tokens {
		if t.Expired(now) {
			delete(s.tokens, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryRevocationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

package memory

import (
	"context"
	"sync"
	"time"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

type entry struct {
	st        domain.CalculatorState
	expiresAt time.Time // нулевое значение — без срока
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// SessionStore держит сессии в памяти процесса. Подходит для одного инстанса, MCP и TUI.
// Как и в Redis, сессия живёт ttl с последней записи (Create или Update).
// Просроченные записи удаляются при обращении и при периодической чистке в Create.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]entry
	ttl       time.Duration
	nextSweep time.Time
	now       func() time.Time
}

// NewSessionStore возвращает пустое хранилище. ttl <= 0 — сессии не истекают.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) deadline(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// sweep удаляет все просроченные сессии, но не чаще раза в ttl.
func (s *SessionStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Before(s.nextSweep) {
		return
	}
	for id, e := range s.sessions {
		if e.expired(now) {
			delete(s.sessions, id)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}

// lookup возвращает живую сессию, попутно выбрасывая просроченную.
func (s *SessionStore) lookup(id string, now time.Time) (entry, bool) {
	e, ok := s.sessions[id]
	if !ok {
		return entry{}, false
	}
	if e.expired(now) {
		delete(s.sessions, id)
		return entry{}, false
	}
	return e, true
}

func (s *SessionStore) Create(_ context.Context, id string, st domain.CalculatorState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	s.sessions[id] = entry{st: st, expiresAt: s.deadline(now)}
	return nil
}

// Get не продлевает срок жизни сессии.
func (s *SessionStore) Get(_ context.Context, id string) (domain.CalculatorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.lookup(id, s.now())
	if !ok {
		return domain.CalculatorState{}, domain.ErrSessionNotFound
	}
	return e.st, nil
}

// Update выполняет fn под мьютексом, поэтому fn вызывается ровно один раз.
// Если fn вернула ошибку, состояние и срок жизни не меняются.
func (s *SessionStore) Update(_ context.Context, id string, fn func(st *domain.CalculatorState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e, ok := s.lookup(id, now)
	if !ok {
		return domain.ErrSessionNotFound
	}
	st := e.st
	if err := fn(&st); err != nil {
		return err
	}
	s.sessions[id] = entry{st: st, expiresAt: s.deadline(now)}
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lookup(id, s.now()); !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}


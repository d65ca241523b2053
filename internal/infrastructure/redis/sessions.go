package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

const (
	sessionKeyPrefix = "calculator:session:"
	// maxUpdateRetries — сколько раз повторяем транзакцию, если ключ изменили параллельно.
	maxUpdateRetries = 10
)

// SessionStore хранит состояния калькуляторов в Redis как JSON. Каждое обновление
// продлевает TTL, так что брошенные сессии исчезают сами.
type SessionStore struct {
	cli *Client
	ttl time.Duration
	log *slog.Logger
}

// NewSessionStore возвращает хранилище сессий, реализующее ports.ISessionStore.
// ttl <= 0 — ключи без срока.
func NewSessionStore(cli *Client, ttl time.Duration, log *slog.Logger) *SessionStore {
	if ttl < 0 {
		ttl = 0
	}
	return &SessionStore{cli: cli, ttl: ttl, log: log}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create сохраняет начальное состояние сессии.
func (s *SessionStore) Create(ctx context.Context, id string, st domain.CalculatorState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.cli.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		s.log.Debug("session set failed", "session_id", id, "error", err)
		return err
	}
	return nil
}

// Get возвращает состояние сессии. Если ключа нет — domain.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, id string) (domain.CalculatorState, error) {
	data, err := s.cli.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return domain.CalculatorState{}, domain.ErrSessionNotFound
		}
		s.log.Debug("session get failed", "session_id", id, "error", err)
		return domain.CalculatorState{}, err
	}
	return decodeState(data)
}

// Update применяет fn к состоянию под WATCH: если ключ поменяли между чтением и записью,
// транзакция откатывается и fn вызывается заново на свежем состоянии.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(st *domain.CalculatorState) error) error {
	key := sessionKey(id)
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrSessionNotFound
			}
			return err
		}
		st, err := decodeState(data)
		if err != nil {
			return err
		}
		if err := fn(&st); err != nil {
			return err
		}
		out, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("session marshal: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.cli.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			s.log.Debug("session update conflict, retrying", "session_id", id, "attempt", i+1)
			continue
		}
		return err
	}
	return fmt.Errorf("session %s: too many concurrent updates", id)
}

// Delete удаляет сессию. Удаление несуществующей — domain.ErrSessionNotFound.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	n, err := s.cli.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func decodeState(data []byte) (domain.CalculatorState, error) {
	var st domain.CalculatorState
	if err := json.Unmarshal(data, &st); err != nil {
		return domain.CalculatorState{}, fmt.Errorf("session unmarshal: %w", err)
	}
	return st, nil
}

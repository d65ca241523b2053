package calculator

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
	"lizzyKeypad/internal/ports"
)

// maxOperandLen совпадает с пределом набора в engine: длиннее на калькуляторе не набрать.
const maxOperandLen = 16

// operandRe — десятичный литерал, который можно набрать на клавиатуре калькулятора.
var operandRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]*)?$|^-?\.[0-9]+$`)

// computationKey формирует читаемый ключ вычисления для брокера, например "1 + 1".
func computationKey(ev engine.Evaluation) string {
	return ev.Left + " " + string(ev.Operator) + " " + ev.Right
}

// toComputation переводит событие движка в запись журнала. Операнды уже проверены движком.
func toComputation(sessionID string, ev engine.Evaluation, now time.Time) domain.Computation {
	c := domain.Computation{
		SessionID: sessionID,
		Operation: string(ev.Operator),
		Display:   ev.Display,
		Timestamp: now,
	}
	c.Number1, _ = strconv.ParseFloat(ev.Left, 64)
	c.Number2, _ = strconv.ParseFloat(ev.Right, 64)
	if ev.Err != nil {
		c.Message = ev.Err.Error()
		return c
	}
	c.Result, _ = strconv.ParseFloat(ev.Result, 64)
	return c
}

// operandKeys раскладывает число на нажатия: цифры, точка и смена знака в конце.
func operandKeys(s string) []domain.Key {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	keys := make([]domain.Key, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			keys = append(keys, domain.Key{Kind: domain.KeyDecimal})
			continue
		}
		keys = append(keys, domain.Key{Kind: domain.KeyDigit, Digit: s[i]})
	}
	if neg {
		keys = append(keys, domain.Key{Kind: domain.KeyToggleSign})
	}
	return keys
}

// UseCase — бизнес-логика калькулятора.
type UseCase struct {
	sessions  ports.ISessionStore
	repo      ports.IComputationRepository
	broker    ports.IProducer
	analytics ports.IComputationAnalytics
	log       *slog.Logger
	newID     func() string
	now       func() time.Time
}

// New создаёт юзкейс калькулятора. repo, broker и analytics могут быть nil, тогда журнал,
// публикация и аналитика отключены.
func New(sessions ports.ISessionStore, repo ports.IComputationRepository, broker ports.IProducer, analytics ports.IComputationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		sessions:  sessions,
		repo:      repo,
		broker:    broker,
		analytics: analytics,
		log:       log,
		newID:     newSessionID,
		now:       time.Now,
	}
}

package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
)

func newSessionID() string {
	return uuid.NewString()
}

// NewSession — заводит калькулятор в начальном состоянии и возвращает его экран.
func (u *UseCase) NewSession(ctx context.Context) (domain.Screen, error) {
	id := u.newID()
	e := engine.New()
	if err := u.sessions.Create(ctx, id, e.State()); err != nil {
		return domain.Screen{}, fmt.Errorf("create session: %w", err)
	}
	sessionsOpened.Inc()
	u.log.Info("session created", "session_id", id)
	return e.Screen(id), nil
}

// Press — разбирает все клавиши, атомарно применяет их к состоянию сессии,
// затем пишет завершённые вычисления в журнал и в брокер.
// Неизвестная клавиша отклоняет весь вызов, состояние не меняется.
func (u *UseCase) Press(ctx context.Context, sessionID string, keys ...string) (domain.Screen, error) {
	parsed, err := domain.ParseKeys(keys)
	if err != nil {
		return domain.Screen{}, err
	}

	var (
		screen domain.Screen
		evals  []engine.Evaluation
	)
	err = u.sessions.Update(ctx, sessionID, func(st *domain.CalculatorState) error {
		evals = evals[:0] // Update может повторить fn
		e := engine.Restore(*st, engine.WithComputeHook(func(ev engine.Evaluation) {
			evals = append(evals, ev)
		}))
		for _, k := range parsed {
			e.Press(k)
		}
		*st = e.State()
		screen = e.Screen(sessionID)
		return nil
	})
	if err != nil {
		return domain.Screen{}, fmt.Errorf("press: %w", err)
	}
	for _, k := range parsed {
		keyPresses.WithLabelValues(keyLabel(k)).Inc()
	}

	for _, ev := range evals {
		c := toComputation(sessionID, ev, u.now())
		u.record(ctx, computationKey(ev), c)
	}
	return screen, nil
}

// Screen — текущий экран сессии.
func (u *UseCase) Screen(ctx context.Context, sessionID string) (domain.Screen, error) {
	st, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Screen{}, fmt.Errorf("screen: %w", err)
	}
	return engine.Restore(st).Screen(sessionID), nil
}

// CloseSession — удаляет сессию.
func (u *UseCase) CloseSession(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	u.log.Info("session closed", "session_id", sessionID)
	return nil
}

// Evaluate — разовое вычисление "number1 operation number2" на свежем калькуляторе,
// набранное так же, как это сделал бы пользователь. Деление на ноль не считается ошибкой вызова:
// возвращается запись с Display "Error" и сообщением.
func (u *UseCase) Evaluate(ctx context.Context, number1, number2, operation string) (*domain.Computation, error) {
	op := domain.Operator(operation)
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, operation)
	}
	for _, n := range []string{number1, number2} {
		if len(n) > maxOperandLen || !operandRe.MatchString(n) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOperand, n)
		}
	}

	var ev *engine.Evaluation
	e := engine.New(engine.WithComputeHook(func(got engine.Evaluation) {
		ev = &got
	}))
	for _, k := range operandKeys(number1) {
		e.Press(k)
	}
	e.ChooseOperator(op)
	for _, k := range operandKeys(number2) {
		e.Press(k)
	}
	e.Compute()
	if ev == nil {
		// движок не смог разобрать операнды, после проверки выше так быть не должно
		return nil, fmt.Errorf("%w: %s %s %s", domain.ErrInvalidOperand, number1, operation, number2)
	}

	c := toComputation("", *ev, u.now())
	u.record(ctx, computationKey(*ev), c)
	return &c, nil
}

// History — журнал вычислений (обвязка над репозиторием). Без репозитория журнал пуст.
func (u *UseCase) History(ctx context.Context, sessionID string) ([]domain.Computation, error) {
	if u.repo == nil {
		return []domain.Computation{}, nil
	}
	return u.repo.GetHistory(ctx, sessionID)
}

// HandleComputationEvent вызывается консьюмером при получении сообщения из топика вычислений.
func (u *UseCase) HandleComputationEvent(ctx context.Context, c domain.Computation) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteComputation(ctx, c); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("computation stored to click", "number1", c.Number1, "operation", c.Operation, "number2", c.Number2, "display", c.Display)
	return nil
}

// record сохраняет вычисление в журнал и публикует его. Нажатие уже применено,
// поэтому сбои здесь только логируются.
func (u *UseCase) record(ctx context.Context, key string, c domain.Computation) {
	outcome := "ok"
	if c.Display == domain.ErrorDisplay {
		outcome = "error"
	}
	computations.WithLabelValues(c.Operation, outcome).Inc()

	if u.repo != nil {
		if err := u.repo.SaveComputation(ctx, c); err != nil {
			u.log.Warn("computation save", "key", key, "error", err)
		} else {
			u.log.Info("computation saved", "key", key, "display", c.Display)
		}
	}

	if u.broker == nil {
		return
	}
	value, err := json.Marshal(c)
	if err != nil {
		u.log.Warn("computation marshal", "key", key, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("computation published", "key", key, "display", c.Display)
	}
}

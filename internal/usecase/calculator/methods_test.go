package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/mocks"
	"lizzyKeypad/internal/ports"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var fixedNow = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

// newTestUseCase собирает юзкейс с фиксированным id и временем.
func newTestUseCase(sessions ports.ISessionStore, repo ports.IComputationRepository, broker ports.IProducer, analytics ports.IComputationAnalytics) *UseCase {
	uc := New(sessions, repo, broker, analytics, newTestLogger())
	uc.newID = func() string { return "sess-1" }
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// expectUpdate программирует мок хранилища: Update применяет fn к state и сохраняет результат обратно.
func expectUpdate(sessions *mocks.MockISessionStore, id string, state *domain.CalculatorState) *gomock.Call {
	return sessions.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(*domain.CalculatorState) error) error {
			st := *state
			if err := fn(&st); err != nil {
				return err
			}
			*state = st
			return nil
		})
}

func TestNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)

	sessions.EXPECT().Create(gomock.Any(), "sess-1", domain.InitialState()).Return(nil)

	uc := newTestUseCase(sessions, nil, nil, nil)
	screen, err := uc.NewSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Screen{SessionID: "sess-1", Display: "0"}, screen)
}

func TestNewSession_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	sessions.EXPECT().Create(gomock.Any(), "sess-1", gomock.Any()).Return(errors.New("redis down"))

	uc := newTestUseCase(sessions, nil, nil, nil)
	_, err := uc.NewSession(context.Background())

	assert.ErrorContains(t, err, "redis down")
}

// Полный флоу: нажатия -> состояние -> журнал -> брокер.
func TestPress_ComputesAndRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	repo := mocks.NewMockIComputationRepository(ctrl)
	broker := mocks.NewMockIProducer(ctrl)

	state := domain.InitialState()
	expectUpdate(sessions, "sess-1", &state)

	want := domain.Computation{
		SessionID: "sess-1",
		Number1:   10,
		Number2:   5,
		Operation: "+",
		Result:    15,
		Display:   "15",
		Timestamp: fixedNow,
	}
	gomock.InOrder(
		repo.EXPECT().SaveComputation(gomock.Any(), want).Return(nil),
		broker.EXPECT().Send(gomock.Any(), []byte("10 + 5"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value []byte) error {
				var got domain.Computation
				require.NoError(t, json.Unmarshal(value, &got))
				assert.Equal(t, "15", got.Display)
				return nil
			}),
	)

	uc := newTestUseCase(sessions, repo, broker, nil)
	screen, err := uc.Press(context.Background(), "sess-1", "1", "0", "+", "5", "=")

	require.NoError(t, err)
	assert.Equal(t, "15", screen.Display)
	assert.Empty(t, screen.Expression)
	assert.Equal(t, "15", state.Current, "состояние сохранено в хранилище")
	assert.True(t, state.ResetNext)
}

func TestPress_PendingOperatorShowsExpression(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)

	state := domain.InitialState()
	expectUpdate(sessions, "sess-1", &state)

	// ни журнал, ни брокер не вызываются, вычислений не было
	uc := newTestUseCase(sessions, mocks.NewMockIComputationRepository(ctrl), mocks.NewMockIProducer(ctrl), nil)
	screen, err := uc.Press(context.Background(), "sess-1", "1", "2", "×")

	require.NoError(t, err)
	assert.Equal(t, domain.Screen{SessionID: "sess-1", Display: "12", Expression: "12 *"}, screen)
}

func TestPress_UnknownKeyLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	// Update не ожидается: клавиши разбираются до обращения к хранилищу

	uc := newTestUseCase(sessions, nil, nil, nil)
	_, err := uc.Press(context.Background(), "sess-1", "1", "sqrt")

	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestPress_SessionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	sessions.EXPECT().Update(gomock.Any(), "nope", gomock.Any()).Return(domain.ErrSessionNotFound)

	uc := newTestUseCase(sessions, nil, nil, nil)
	_, err := uc.Press(context.Background(), "nope", "1")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestPress_DivisionByZeroIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	repo := mocks.NewMockIComputationRepository(ctrl)

	state := domain.InitialState()
	expectUpdate(sessions, "sess-1", &state)
	repo.EXPECT().SaveComputation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Computation) error {
			assert.Equal(t, "Error", c.Display)
			assert.Equal(t, "division by zero", c.Message)
			assert.Zero(t, c.Result)
			return nil
		})

	uc := newTestUseCase(sessions, repo, nil, nil)
	screen, err := uc.Press(context.Background(), "sess-1", "5", "/", "0", "=")

	require.NoError(t, err)
	assert.Equal(t, "Error", screen.Display)
	assert.True(t, screen.Error)
}

// Сбой журнала и брокера не ломает нажатие: состояние уже сохранено.
func TestPress_RecordFailuresAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	repo := mocks.NewMockIComputationRepository(ctrl)
	broker := mocks.NewMockIProducer(ctrl)

	state := domain.CalculatorState{Current: "3", Previous: "2", Operator: domain.OpMul}
	expectUpdate(sessions, "sess-1", &state)
	repo.EXPECT().SaveComputation(gomock.Any(), gomock.Any()).Return(errors.New("pg down"))
	broker.EXPECT().Send(gomock.Any(), []byte("2 * 3"), gomock.Any()).Return(errors.New("kafka down"))

	uc := newTestUseCase(sessions, repo, broker, nil)
	screen, err := uc.Press(context.Background(), "sess-1", "=")

	require.NoError(t, err)
	assert.Equal(t, "6", screen.Display)
}

// Оптимистичная блокировка может повторить fn, но вычисления не должны задвоиться.
func TestPress_RetriedUpdateDoesNotDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	repo := mocks.NewMockIComputationRepository(ctrl)

	sessions.EXPECT().Update(gomock.Any(), "sess-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(*domain.CalculatorState) error) error {
			for i := 0; i < 3; i++ {
				st := domain.CalculatorState{Current: "4", Previous: "4", Operator: domain.OpAdd}
				if err := fn(&st); err != nil {
					return err
				}
			}
			return nil
		})
	repo.EXPECT().SaveComputation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	uc := newTestUseCase(sessions, repo, nil, nil)
	screen, err := uc.Press(context.Background(), "sess-1", "=")

	require.NoError(t, err)
	assert.Equal(t, "8", screen.Display)
}

func TestScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	sessions.EXPECT().Get(gomock.Any(), "sess-1").
		Return(domain.CalculatorState{Current: "1234567890123456", Previous: "2", Operator: domain.OpSub}, nil)

	uc := newTestUseCase(sessions, nil, nil, nil)
	screen, err := uc.Screen(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "1.234568e+15", screen.Display)
	assert.Equal(t, "2 -", screen.Expression)
}

func TestCloseSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

	uc := newTestUseCase(sessions, nil, nil, nil)
	require.NoError(t, uc.CloseSession(context.Background(), "sess-1"))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		number1   string
		number2   string
		operation string
		display   string
		result    float64
	}{
		{name: "сложение", number1: "10", number2: "5", operation: "+", display: "15", result: 15},
		{name: "дроби без шума", number1: "0.1", number2: "0.2", operation: "+", display: "0.3", result: 0.3},
		{name: "отрицательный операнд", number1: "5", number2: "-3", operation: "-", display: "8", result: 8},
		{name: "операнд с точки", number1: ".5", number2: "4", operation: "*", display: "2", result: 2},
		{name: "деление с округлением", number1: "1", number2: "3", operation: "/", display: "0.33333333", result: 0.33333333},
		{name: "длинный результат на экране в экспоненте", number1: "999999999", number2: "999999999", operation: "*", display: "1.000000e+18", result: 999999998000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockIComputationRepository(ctrl)
			repo.EXPECT().SaveComputation(gomock.Any(), gomock.Any()).Return(nil)

			uc := newTestUseCase(nil, repo, nil, nil)
			c, err := uc.Evaluate(context.Background(), tt.number1, tt.number2, tt.operation)

			require.NoError(t, err)
			assert.Equal(t, tt.display, c.Display)
			assert.Equal(t, tt.result, c.Result)
			assert.Equal(t, tt.operation, c.Operation)
			assert.Empty(t, c.SessionID)
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)
	c, err := uc.Evaluate(context.Background(), "10", "0", "/")

	require.NoError(t, err)
	assert.Equal(t, "Error", c.Display)
	assert.Equal(t, "division by zero", c.Message)
}

// Разовое вычисление показывает то же, что экран сессии после тех же нажатий.
func TestEvaluate_MatchesKeypadDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockISessionStore(ctrl)
	st := domain.InitialState()
	expectUpdate(sessions, "s", &st)

	uc := newTestUseCase(sessions, nil, nil, nil)
	c, err := uc.Evaluate(context.Background(), "123456789", "-98765.4321", "/")
	require.NoError(t, err)

	keys := strings.Split("1 2 3 4 5 6 7 8 9 / 9 8 7 6 5 . 4 3 2 1 negate =", " ")
	screen, err := uc.Press(context.Background(), "s", keys...)
	require.NoError(t, err)

	assert.Equal(t, screen.Display, c.Display)
	assert.Contains(t, c.Display, "e+")
}

func TestEvaluate_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	_, err := uc.Evaluate(context.Background(), "1", "2", "^")
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)

	for _, bad := range []string{"", "abc", "1e5", "1.2.3", "--1", "12345678901234567"} {
		_, err := uc.Evaluate(context.Background(), bad, "1", "+")
		assert.ErrorIs(t, err, domain.ErrInvalidOperand, "operand %q", bad)
	}
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIComputationRepository(ctrl)

	// Готовим данные, которые "вернёт БД"
	expected := []domain.Computation{
		{ID: 2, SessionID: "sess-1", Number1: 20, Number2: 4, Operation: "/", Result: 5, Display: "5"},
		{ID: 1, SessionID: "sess-1", Number1: 10, Number2: 5, Operation: "+", Result: 15, Display: "15"},
	}
	repo.EXPECT().GetHistory(gomock.Any(), "sess-1").Return(expected, nil)

	uc := newTestUseCase(nil, repo, nil, nil)
	result, err := uc.History(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestHistory_WithoutRepository(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)
	result, err := uc.History(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestHandleComputationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	analytics := mocks.NewMockIComputationAnalytics(ctrl)

	c := domain.Computation{Number1: 1, Number2: 2, Operation: "+", Result: 3, Display: "3"}
	analytics.EXPECT().WriteComputation(gomock.Any(), c).Return(nil)

	uc := newTestUseCase(nil, nil, nil, analytics)
	require.NoError(t, uc.HandleComputationEvent(context.Background(), c))
}

func TestHandleComputationEvent_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	analytics := mocks.NewMockIComputationAnalytics(ctrl)
	analytics.EXPECT().WriteComputation(gomock.Any(), gomock.Any()).Return(errors.New("click down"))

	uc := newTestUseCase(nil, nil, nil, analytics)
	assert.Error(t, uc.HandleComputationEvent(context.Background(), domain.Computation{}))
}

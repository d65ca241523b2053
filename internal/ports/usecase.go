package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/domain"
)

// IKeypadUseCase — контракт бизнес-логики калькулятора: сессии с нажатиями, разовые вычисления,
// журнал и обработка событий из Kafka.
type IKeypadUseCase interface {
	NewSession(ctx context.Context) (domain.Screen, error)
	Press(ctx context.Context, sessionID string, keys ...string) (domain.Screen, error)
	Screen(ctx context.Context, sessionID string) (domain.Screen, error)
	CloseSession(ctx context.Context, sessionID string) error
	Evaluate(ctx context.Context, number1, number2, operation string) (*domain.Computation, error)
	History(ctx context.Context, sessionID string) ([]domain.Computation, error)
	HandleComputationEvent(ctx context.Context, c domain.Computation) error
}

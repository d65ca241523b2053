package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/domain"
)

// IComputationRepository — контракт сохранения и чтения журнала вычислений.
// GetHistory с пустым sessionID возвращает все записи, последние сначала.
type IComputationRepository interface {
	SaveComputation(ctx context.Context, c domain.Computation) error
	GetHistory(ctx context.Context, sessionID string) ([]domain.Computation, error)
	Ping(ctx context.Context) error
}

package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/domain"
)

// IComputationAnalytics — запись вычислений в хранилище для аналитики (ClickHouse).
type IComputationAnalytics interface {
	WriteComputation(ctx context.Context, c domain.Computation) error
}

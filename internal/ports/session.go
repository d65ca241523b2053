package ports

//go:generate mockgen -source=session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/domain"
)

// ISessionStore — хранилище состояний калькуляторов по id сессии.
// Update — атомарное чтение-изменение-запись: два нажатия одной сессии не перемешиваются.
// fn может быть вызвана повторно (оптимистичная блокировка), поэтому не должна иметь внешних эффектов.
// Для неизвестного id методы возвращают domain.ErrSessionNotFound.
type ISessionStore interface {
	Create(ctx context.Context, id string, st domain.CalculatorState) error
	Get(ctx context.Context, id string) (domain.CalculatorState, error)
	Update(ctx context.Context, id string, fn func(st *domain.CalculatorState) error) error
	Delete(ctx context.Context, id string) error
}

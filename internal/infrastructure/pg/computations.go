package pg

import (
	"context"
	"log/slog"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IComputationRepository = (*ComputationRepo)(nil)

// ComputationRepo реализует ports.IComputationRepository для PostgreSQL.
type ComputationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewComputationRepo возвращает репозиторий вычислений.
func NewComputationRepo(db *DB, log *slog.Logger) *ComputationRepo {
	return &ComputationRepo{db: db, log: log}
}

// SaveComputation сохраняет вычисление в БД.
func (r *ComputationRepo) SaveComputation(ctx context.Context, c domain.Computation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO computations (session_id, number1, number2, operation, result, display, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.SessionID, c.Number1, c.Number2, c.Operation, c.Result, c.Display, c.Message, c.Timestamp)
	if err != nil {
		r.log.Debug("SaveComputation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает журнал вычислений (последние сначала). Пустой sessionID — все сессии.
func (r *ComputationRepo) GetHistory(ctx context.Context, sessionID string) ([]domain.Computation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, number1, number2, operation, result, display, message, created_at
		 FROM computations
		 WHERE $1 = '' OR session_id = $1
		 ORDER BY created_at DESC, id DESC`, sessionID)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	list := []domain.Computation{}
	for rows.Next() {
		var c domain.Computation
		err := rows.Scan(&c.ID, &c.SessionID, &c.Number1, &c.Number2, &c.Operation, &c.Result, &c.Display, &c.Message, &c.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *ComputationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

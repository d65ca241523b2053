package click

import (
	"context"
	"fmt"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IComputationAnalytics = (*ComputationWriter)(nil)

const computationsAnalyticsFull = "default.computations_analytics"

// ComputationWriter записывает вычисления в ClickHouse в формате, удобном для аналитики
// (GROUP BY operation, доля ошибок, активность по сессиям).
type ComputationWriter struct {
	db *Client
}

// NewComputationWriter создаёт писатель вычислений для аналитики.
func NewComputationWriter(db *Client) *ComputationWriter {
	return &ComputationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызови один раз при старте приложения.
func (w *ComputationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			number1 Float64,
			number2 Float64,
			operation LowCardinality(String),
			result Float64,
			display String,
			is_error UInt8,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`,
		computationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteComputation пишет одно вычисление в ClickHouse.
func (w *ComputationWriter) WriteComputation(ctx context.Context, c domain.Computation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, number1, number2, operation, result, display, is_error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		computationsAnalyticsFull,
	)
	var isError uint8
	if c.Display == domain.ErrorDisplay {
		isError = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		c.SessionID, c.Number1, c.Number2, c.Operation, c.Result, c.Display, isError, c.Timestamp)
	if err != nil {
		return fmt.Errorf("insert computation: %w", err)
	}
	return nil
}

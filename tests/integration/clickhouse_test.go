package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/infrastructure/click"
	"lizzyKeypad/internal/usecase/calculator"
)

// setupClick подключается к тестовому ClickHouse, создаёт и очищает таблицу аналитики.
func setupClick(t *testing.T) (*click.Client, *click.ComputationWriter) {
	t.Helper()

	ctx := context.Background()
	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")
	t.Cleanup(func() { client.Close() })

	writer := click.NewComputationWriter(client)
	require.NoError(t, writer.EnsureTable(ctx), "не удалось создать таблицу")

	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.computations_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")
	return client, writer
}

func TestClickWriter_WriteComputation(t *testing.T) {
	skipShort(t)

	client, writer := setupClick(t)
	ctx := context.Background()

	for _, c := range []domain.Computation{
		{SessionID: "s1", Number1: 10, Number2: 5, Operation: "+", Result: 15, Display: "15", Timestamp: time.Now()},
		{SessionID: "s1", Number1: 1, Number2: 0, Operation: "/", Display: "Error", Message: "division by zero", Timestamp: time.Now()},
	} {
		require.NoError(t, writer.WriteComputation(ctx, c))
	}

	var total, errorsCount uint64
	err := client.DB().QueryRowContext(ctx,
		"SELECT count(), countIf(is_error = 1) FROM default.computations_analytics").Scan(&total, &errorsCount)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Equal(t, uint64(1), errorsCount)
}

// Консьюмер вызывает HandleComputationEvent — проверяем, что use case доводит запись до ClickHouse.
func TestClick_HandleComputationEvent(t *testing.T) {
	skipShort(t)

	client, writer := setupClick(t)
	uc := calculator.New(nil, nil, nil, writer, newTestLogger())
	ctx := context.Background()

	c := domain.Computation{SessionID: "s2", Number1: 6, Number2: 7, Operation: "*", Result: 42, Display: "42", Timestamp: time.Now()}
	require.NoError(t, uc.HandleComputationEvent(ctx, c))

	var display string
	err := client.DB().QueryRowContext(ctx,
		"SELECT display FROM default.computations_analytics WHERE session_id = ?", "s2").Scan(&display)
	require.NoError(t, err)
	assert.Equal(t, "42", display)
}

func TestClick_Ping(t *testing.T) {
	skipShort(t)

	client, _ := setupClick(t)
	assert.NoError(t, client.Ping(context.Background()))
}

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/infrastructure/mongo"
)

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *mongo.ComputationRepo {
	t.Helper()

	ctx := context.Background()
	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "computations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return mongo.NewComputationRepo(client, newTestLogger())
}

func TestMongoRepo_SaveAndGetHistory(t *testing.T) {
	skipShort(t)

	repo := setupMongoRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	list := []domain.Computation{
		{SessionID: "a", Number1: 10, Number2: 5, Operation: "+", Result: 15, Display: "15", Timestamp: now.Add(-time.Second)},
		{SessionID: "b", Number1: 1, Number2: 0, Operation: "/", Display: "Error", Message: "division by zero", Timestamp: now},
	}
	for _, c := range list {
		require.NoError(t, repo.SaveComputation(ctx, c))
	}

	all, err := repo.GetHistory(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Error", all[0].Display, "первая запись — самая новая")
	assert.Equal(t, "division by zero", all[0].Message)
	assert.Equal(t, now, all[0].Timestamp.UTC())

	onlyA, err := repo.GetHistory(ctx, "a")
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, 15.0, onlyA[0].Result)
}

func TestMongoRepo_Ping(t *testing.T) {
	skipShort(t)

	assert.NoError(t, setupMongoRepo(t).Ping(context.Background()))
}

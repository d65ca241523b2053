package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IComputationRepository = (*ComputationRepo)(nil)

// computationDoc — документ в коллекции computations. Автоинкремента нет, поэтому ID в домене остаётся 0.
type computationDoc struct {
	SessionID string    `bson:"session_id"`
	Number1   float64   `bson:"number1"`
	Number2   float64   `bson:"number2"`
	Operation string    `bson:"operation"`
	Result    float64   `bson:"result"`
	Display   string    `bson:"display"`
	Message   string    `bson:"message,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// ComputationRepo реализует ports.IComputationRepository для MongoDB.
type ComputationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewComputationRepo возвращает репозиторий вычислений.
func NewComputationRepo(client *Client, log *slog.Logger) *ComputationRepo {
	return &ComputationRepo{client: client, log: log}
}

// SaveComputation сохраняет вычисление в коллекцию.
func (r *ComputationRepo) SaveComputation(ctx context.Context, c domain.Computation) error {
	doc := computationDoc{
		SessionID: c.SessionID,
		Number1:   c.Number1,
		Number2:   c.Number2,
		Operation: c.Operation,
		Result:    c.Result,
		Display:   c.Display,
		Message:   c.Message,
		CreatedAt: c.Timestamp,
	}
	_, err := r.client.Coll().InsertOne(ctx, doc)
	if err != nil {
		r.log.Debug("SaveComputation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает журнал (последние сначала). Пустой sessionID — все сессии.
func (r *ComputationRepo) GetHistory(ctx context.Context, sessionID string) ([]domain.Computation, error) {
	filter := bson.M{}
	if sessionID != "" {
		filter["session_id"] = sessionID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.client.Coll().Find(ctx, filter, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []computationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Computation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Computation{
			SessionID: d.SessionID,
			Number1:   d.Number1,
			Number2:   d.Number2,
			Operation: d.Operation,
			Result:    d.Result,
			Display:   d.Display,
			Message:   d.Message,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *ComputationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

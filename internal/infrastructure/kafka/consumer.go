package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

// maxRetryBackoff — потолок паузы между повторами обработки.
const maxRetryBackoff = 10 * time.Second

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.Computation и вызывает use case.
type Consumer struct {
	r        *kafka.Reader
	uc       ports.IKeypadUseCase
	log      *slog.Logger
	attempts int
	backoff  time.Duration
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IKeypadUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// Run в цикле читает сообщения, обрабатывает их через process и коммитит.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		// коммит offset в группе накопительный: следующее сообщение читаем только после этого
		if err := c.process(ctx, msg); err != nil {
			return err
		}

		if err := c.CommitMessage(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// process вызывает handle, повторяя неудачную обработку с растущей паузой.
// После последней попытки сообщение сбрасывается с ошибкой в логе.
// Ошибку возвращает только при отмене ctx: сообщение остаётся незакоммиченным.
func (c *Consumer) process(ctx context.Context, msg Message) error {
	attempts := max(c.attempts, 1)
	backoff := c.backoff
	for attempt := 1; ; attempt++ {
		err := c.handle(ctx, msg)
		if err == nil {
			return nil
		}
		if attempt >= attempts {
			c.log.Error("kafka handle failed, message dropped",
				"error", err, "key", string(msg.Key), "offset", msg.Offset, "attempts", attempt)
			return nil
		}
		c.log.Warn("kafka handle error, retrying",
			"error", err, "key", string(msg.Key), "offset", msg.Offset, "attempt", attempt, "backoff", backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

// handle декодирует JSON в domain.Computation и вызывает uc.HandleComputationEvent.
// Битое сообщение повторять бессмысленно: оно логируется и считается обработанным.
func (c *Consumer) handle(ctx context.Context, msg Message) error {
	var comp domain.Computation
	if err := json.Unmarshal(msg.Value, &comp); err != nil {
		c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
		return nil
	}
	return c.uc.HandleComputationEvent(ctx, comp)
}

// FetchMessage блокируется до следующего сообщения. Сообщение не коммитится в consumer group до вызова CommitMessage.
func (c *Consumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return c.r.FetchMessage(ctx)
}

// CommitMessage помечает сообщение как обработанное (для consumer group).
func (c *Consumer) CommitMessage(ctx context.Context, msg kafka.Message) error {
	return c.r.CommitMessages(ctx, msg)
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}

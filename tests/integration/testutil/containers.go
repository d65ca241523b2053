// Package testutil содержит хелперы для интеграционных тестов: контейнеры с хранилищами калькулятора.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Endpoint — адрес проброшенного порта контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает адрес "host:port".
func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port
}

func endpoint(ctx context.Context, name string, c testcontainers.Container, port nat.Port) (Endpoint, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%s host: %w", name, err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%s port: %w", name, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}, nil
}

// PostgresContainer — PostgreSQL для журнала вычислений.
type PostgresContainer struct {
	*postgres.PostgresContainer
	Endpoint
	User     string
	Password string
	DBName   string
}

// NewPostgresContainer поднимает PostgreSQL в Docker и возвращает параметры подключения.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const (
		user     = "test"
		password = "test"
		dbName   = "keypad_test"
	)

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	ep, err := endpoint(ctx, "postgres", container, "5432/tcp")
	if err != nil {
		return nil, err
	}
	return &PostgresContainer{PostgresContainer: container, Endpoint: ep, User: user, Password: password, DBName: dbName}, nil
}

// RedisContainer — Redis для сессий калькулятора.
type RedisContainer struct {
	*redis.RedisContainer
	Endpoint
}

// NewRedisContainer поднимает Redis в Docker и возвращает параметры подключения.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	container, err := redis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	ep, err := endpoint(ctx, "redis", container, "6379/tcp")
	if err != nil {
		return nil, err
	}
	return &RedisContainer{RedisContainer: container, Endpoint: ep}, nil
}

// MongoContainer — MongoDB как альтернативный журнал.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	Endpoint
}

// NewMongoContainer поднимает MongoDB в Docker и возвращает параметры подключения.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	ep, err := endpoint(ctx, "mongo", container, "27017/tcp")
	if err != nil {
		return nil, err
	}
	return &MongoContainer{MongoDBContainer: container, Endpoint: ep}, nil
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Addr()
}

// ClickHouseContainer — ClickHouse для аналитики вычислений.
type ClickHouseContainer struct {
	*clickhouse.ClickHouseContainer
	Endpoint
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает ClickHouse в Docker и возвращает параметры нативного протокола.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	const (
		user     = "default"
		password = ""
		database = "default"
	)

	container, err := clickhouse.Run(ctx,
		"clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(user),
		clickhouse.WithPassword(password),
		clickhouse.WithDatabase(database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	ep, err := endpoint(ctx, "clickhouse", container, "9000/tcp")
	if err != nil {
		return nil, err
	}
	return &ClickHouseContainer{ClickHouseContainer: container, Endpoint: ep, User: user, Password: password, Database: database}, nil
}

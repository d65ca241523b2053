package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "lizzyKeypad/internal/api/grpc"
	apihttp "lizzyKeypad/internal/api/http"
	"lizzyKeypad/internal/api/http/controllers/calculator"
	"lizzyKeypad/internal/api/http/controllers/system"
	"lizzyKeypad/internal/infrastructure/click"
	"lizzyKeypad/internal/infrastructure/kafka"
	"lizzyKeypad/internal/infrastructure/memory"
	"lizzyKeypad/internal/infrastructure/mongo"
	"lizzyKeypad/internal/infrastructure/pg"
	"lizzyKeypad/internal/infrastructure/redis"
	"lizzyKeypad/internal/pkg/logger"
	"lizzyKeypad/internal/ports"
	calcUsecase "lizzyKeypad/internal/usecase/calculator"
)

// App — приложение: конфиг и то, что надо закрыть при остановке.
type App struct {
	cfg     Config
	log     *slog.Logger
	closers []func() error
	checks  map[string]system.Pinger
}

// New создаёт приложение с конфигом (подключения поднимаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg, checks: make(map[string]system.Pinger)}
}

func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// close закрывает подключения в обратном порядке.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}

// sessionStore поднимает хранилище сессий по конфигу.
func (a *App) sessionStore() (ports.ISessionStore, error) {
	if a.cfg.Sessions.Backend != SessionsRedis {
		return memory.NewSessionStore(a.cfg.Sessions.TTL), nil
	}
	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	a.onClose(rdb.Close)
	a.checks["sessions"] = rdb
	return redis.NewSessionStore(rdb, a.cfg.Sessions.TTL, a.log), nil
}

// history поднимает журнал вычислений по конфигу. HistoryNone — журнала нет (nil).
func (a *App) history(ctx context.Context) (ports.IComputationRepository, error) {
	switch a.cfg.History.Backend {
	case HistoryPG:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		a.onClose(db.Close)
		if err := pg.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		repo := pg.NewComputationRepo(db, a.log)
		a.checks["history"] = repo
		return repo, nil
	case HistoryMongo:
		client, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		a.onClose(func() error { return client.Disconnect(context.Background()) })
		repo := mongo.NewComputationRepo(client, a.log)
		a.checks["history"] = repo
		return repo, nil
	}
	return nil, nil
}

// analytics поднимает ClickHouse, если он включён.
func (a *App) analytics(ctx context.Context) (ports.IComputationAnalytics, error) {
	if !a.cfg.ClickHouse.Enabled {
		return nil, nil
	}
	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	a.onClose(ch.Close)
	writer := click.NewComputationWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse ensure table: %w", err)
	}
	a.checks["analytics"] = ch
	return writer, nil
}

// Run поднимает зависимости по конфигу, запускает gRPC и HTTP-серверы и консьюмер аналитики
// (блокирующий вызов до SIGINT/SIGTERM).
func (a *App) Run() error {
	a.log = logger.New(a.cfg.Log)
	slog.SetDefault(a.log)
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := a.sessionStore()
	if err != nil {
		return err
	}
	repo, err := a.history(ctx)
	if err != nil {
		return err
	}
	analytics, err := a.analytics(ctx)
	if err != nil {
		return err
	}

	var broker ports.IProducer
	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		a.onClose(producer.Close)
		broker = producer
	}

	uc := calcUsecase.New(sessions, repo, broker, analytics, a.log)

	if a.cfg.Kafka.Enabled && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, a.log)
		a.onClose(consumer.Close)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcAddr := a.cfg.Grpc.Addr()
	grpcSrv := apigrpc.NewServer(grpcAddr, uc, a.log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			a.log.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(a.checks, a.log),
		calculator.New(uc, a.log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	a.log.Info("application started",
		"http", httpAddr,
		"grpc", grpcAddr,
		"sessions", a.cfg.Sessions.Backend,
		"history", a.cfg.History.Backend,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled,
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

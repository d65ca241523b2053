package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var grpcRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "grpc_requests_total",
		Help: "Total number of unary gRPC requests",
	},
	[]string{"method", "code"},
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, сессию, длительность, код/ошибку
// и считает запросы в Prometheus (аналог HTTP request logger).
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		code := status.Code(err)
		grpcRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()

		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds(), "grpc_code", code}
		if s, ok := req.(*structpb.Struct); ok {
			if id := s.GetFields()["session_id"].GetStringValue(); id != "" {
				attrs = append(attrs, "session_id", id)
			}
		}
		if err != nil {
			if st, ok := status.FromError(err); ok {
				attrs = append(attrs, "error", st.Message())
			} else {
				attrs = append(attrs, "error", err.Error())
			}
			log.Warn("grpc request", attrs...)
			return resp, err
		}
		log.Info("grpc request", attrs...)
		return resp, nil
	}
}

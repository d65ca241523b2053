package calculator

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ KeypadServiceServer = (*Server)(nil)

// Server реализует gRPC KeypadService, вызывает use case калькулятора.
type Server struct {
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер калькулятора.
func New(uc ports.IKeypadUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// toStatus переводит доменную ошибку в gRPC-статус.
func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownKey),
		errors.Is(err, domain.ErrUnknownOperation),
		errors.Is(err, domain.ErrInvalidOperand):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.log.Error(op+" failed", "error", err)
	return status.Errorf(codes.Internal, "%v", err)
}

func requiredString(req *structpb.Struct, field string) (string, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok || sv.StringValue == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a non-empty string", field)
	}
	return sv.StringValue, nil
}

func screenStruct(sc domain.Screen) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"session_id": sc.SessionID,
		"display":    sc.Display,
		"expression": sc.Expression,
		"error":      sc.Error,
	})
}

// CreateSession: {} -> {session_id, display, expression, error}.
func (s *Server) CreateSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	sc, err := s.uc.NewSession(ctx)
	if err != nil {
		return nil, s.toStatus("create session", err)
	}
	return screenStruct(sc)
}

// Press: {session_id, keys: [string]} -> экран.
func (s *Server) Press(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredString(req, "session_id")
	if err != nil {
		return nil, err
	}
	list := req.GetFields()["keys"].GetListValue().GetValues()
	if len(list) == 0 {
		return nil, status.Error(codes.InvalidArgument, "keys must be a non-empty list")
	}
	keys := make([]string, 0, len(list))
	for _, v := range list {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "keys must be strings")
		}
		keys = append(keys, sv.StringValue)
	}

	sc, err := s.uc.Press(ctx, id, keys...)
	if err != nil {
		return nil, s.toStatus("press", err)
	}
	return screenStruct(sc)
}

// GetScreen: {session_id} -> экран.
func (s *Server) GetScreen(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requiredString(req, "session_id")
	if err != nil {
		return nil, err
	}
	sc, err := s.uc.Screen(ctx, id)
	if err != nil {
		return nil, s.toStatus("screen", err)
	}
	return screenStruct(sc)
}

// Evaluate: {number1, number2, operation} строками -> {result, display, message}.
func (s *Server) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var args [3]string
	for i, field := range []string{"number1", "number2", "operation"} {
		v, err := requiredString(req, field)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	c, err := s.uc.Evaluate(ctx, args[0], args[1], args[2])
	if err != nil {
		return nil, s.toStatus("evaluate", err)
	}
	return structpb.NewStruct(map[string]any{
		"result":  c.Result,
		"display": c.Display,
		"message": c.Message,
	})
}

// History: {session_id?} -> {items: [...]}, последние сначала.
func (s *Server) History(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.uc.History(ctx, req.GetFields()["session_id"].GetStringValue())
	if err != nil {
		return nil, s.toStatus("history", err)
	}
	items := make([]any, len(list))
	for i, c := range list {
		items[i] = map[string]any{
			"id":                  c.ID,
			"session_id":          c.SessionID,
			"number1":             c.Number1,
			"number2":             c.Number2,
			"operation":           c.Operation,
			"result":              c.Result,
			"display":             c.Display,
			"message":             c.Message,
			"timestamp_unix_nano": c.Timestamp.UnixNano(),
		}
	}
	return structpb.NewStruct(map[string]any{"items": items})
}

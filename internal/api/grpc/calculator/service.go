package calculator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName — полное имя gRPC-сервиса калькулятора.
const ServiceName = "keypad.v1.KeypadService"

// KeypadServiceServer — серверная сторона KeypadService. Тела запросов и ответов —
// google.protobuf.Struct, поля описаны у каждого метода Server.
type KeypadServiceServer interface {
	CreateSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Press(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetScreen(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	History(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc — описание сервиса для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*KeypadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateSession", KeypadServiceServer.CreateSession),
		unary("Press", KeypadServiceServer.Press),
		unary("GetScreen", KeypadServiceServer.GetScreen),
		unary("Evaluate", KeypadServiceServer.Evaluate),
		unary("History", KeypadServiceServer.History),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "keypad/v1/keypad.proto",
}

// RegisterKeypadServiceServer регистрирует реализацию на gRPC-сервере.
func RegisterKeypadServiceServer(s grpc.ServiceRegistrar, srv KeypadServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryCall func(KeypadServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unary собирает обработчик метода так же, как это делает protoc-gen-go-grpc: декодирует
// запрос и прогоняет вызов через цепочку интерцепторов.
func unary(name string, call unaryCall) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(KeypadServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(KeypadServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Client — клиент KeypadService поверх любого grpc.ClientConnInterface.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient создаёт клиента.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CreateSession", in, opts...)
}

func (c *Client) Press(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Press", in, opts...)
}

func (c *Client) GetScreen(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetScreen", in, opts...)
}

func (c *Client) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Evaluate", in, opts...)
}

func (c *Client) History(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "History", in, opts...)
}

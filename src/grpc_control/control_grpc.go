package grpc_control

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the control service.
const ServiceName = "missionstats.v1.Control"

const (
	methodDateWindow   = "/" + ServiceName + "/DateWindow"
	methodListMissions = "/" + ServiceName + "/ListMissions"
	methodListSources  = "/" + ServiceName + "/ListSources"
	methodAddSource    = "/" + ServiceName + "/AddSource"
	methodRemoveSource = "/" + ServiceName + "/RemoveSource"
)

// -----------------------------------------------------------------------------
// Server API
// -----------------------------------------------------------------------------

// ControlServer is the server API for the control service. Requests and
// responses are google.protobuf.Struct messages.
type ControlServer interface {
	DateWindow(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMissions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSources(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddSource(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveSource(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedControlServer can be embedded for forward compatibility.
type UnimplementedControlServer struct{}

func (UnimplementedControlServer) DateWindow(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DateWindow not implemented")
}
func (UnimplementedControlServer) ListMissions(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMissions not implemented")
}
func (UnimplementedControlServer) ListSources(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSources not implemented")
}
func (UnimplementedControlServer) AddSource(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSource not implemented")
}
func (UnimplementedControlServer) RemoveSource(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveSource not implemented")
}

// -----------------------------------------------------------------------------

func RegisterControlServer(s grpc.ServiceRegistrar, srv ControlServer) {
	s.RegisterService(&Control_ServiceDesc, srv)
}

// unaryHandler adapts a ControlServer method to a grpc method handler.
func unaryHandler(fullMethod string, call func(ControlServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ControlServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ControlServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Control_ServiceDesc is the grpc.ServiceDesc for the control service.
var Control_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "DateWindow", Handler: unaryHandler(methodDateWindow, ControlServer.DateWindow)},
		{MethodName: "ListMissions", Handler: unaryHandler(methodListMissions, ControlServer.ListMissions)},
		{MethodName: "ListSources", Handler: unaryHandler(methodListSources, ControlServer.ListSources)},
		{MethodName: "AddSource", Handler: unaryHandler(methodAddSource, ControlServer.AddSource)},
		{MethodName: "RemoveSource", Handler: unaryHandler(methodRemoveSource, ControlServer.RemoveSource)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "missionstats/v1/control.proto",
}

// -----------------------------------------------------------------------------
// Client API
// -----------------------------------------------------------------------------

type ControlClient struct {
	cc grpc.ClientConnInterface
}

func NewControlClient(cc grpc.ClientConnInterface) *ControlClient {
	return &ControlClient{cc: cc}
}

func (c *ControlClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ControlClient) DateWindow(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodDateWindow, in, opts...)
}

func (c *ControlClient) ListMissions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodListMissions, in, opts...)
}

func (c *ControlClient) ListSources(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodListSources, in, opts...)
}

func (c *ControlClient) AddSource(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodAddSource, in, opts...)
}

func (c *ControlClient) RemoveSource(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, methodRemoveSource, in, opts...)
}

// Package grpcapi serves the percentage conversion over gRPC and translates
// contract violations into gRPC statuses.
package grpcapi

import (
	"context"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/rafaeljc/dbc/internal/percent"
	"github.com/rafaeljc/dbc/pkg/contract"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "dbc.v1.PercentService"
	// ConvertMethod is the full method name of Convert.
	ConvertMethod = "/" + ServiceName + "/Convert"
)

// PercentService converts a fraction into a percentage string.
// Messages are protobuf well-known wrappers, so no generated code is needed.
type PercentService interface {
	Convert(ctx context.Context, in *wrapperspb.DoubleValue) (*wrapperspb.StringValue, error)
}

// API implements PercentService on top of percent.Convert.
type API struct {
	checker *contract.Checker
}

var _ PercentService = (*API)(nil)

// NewAPI creates the gRPC API.
func NewAPI(checker *contract.Checker) *API {
	if checker == nil {
		panic("grpcapi: checker cannot be nil")
	}
	return &API{checker: checker}
}

// Register connects this implementation to a gRPC server.
func (a *API) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&percentServiceDesc, a)
}

// Convert returns the percentage for in.Value. Contract violations are
// returned unchanged; ContractInterceptor maps them to statuses.
func (a *API) Convert(_ context.Context, in *wrapperspb.DoubleValue) (*wrapperspb.StringValue, error) {
	fraction := in.GetValue()
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return nil, status.Error(codes.InvalidArgument, "fraction must be a finite number")
	}

	pct, err := percent.Convert(a.checker, fraction)
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(pct), nil
}

func convertHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.DoubleValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PercentService).Convert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConvertMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PercentService).Convert(ctx, req.(*wrapperspb.DoubleValue))
	}
	return interceptor(ctx, in, info, handler)
}

var percentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PercentService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Convert",
			Handler:    convertHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// Client calls PercentService over a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Convert invokes the remote conversion.
func (c *Client) Convert(ctx context.Context, fraction float64, opts ...grpc.CallOption) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, ConvertMethod, wrapperspb.Double(fraction), out, opts...); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

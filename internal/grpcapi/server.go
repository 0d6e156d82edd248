package grpcapi

import (
	"log/slog"

	"google.golang.org/grpc"

	"github.com/rafaeljc/dbc/pkg/contract"
)

// NewServer builds a gRPC server with the interceptor chain
// logger → recovery → contract and the PercentService registered.
func NewServer(log *slog.Logger, checker *contract.Checker, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		RequestLoggerInterceptor(log),
		RecoveryInterceptor(),
		ContractInterceptor(),
	))

	s := grpc.NewServer(opts...)
	NewAPI(checker).Register(s)
	return s
}

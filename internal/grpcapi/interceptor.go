package grpcapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/rafaeljc/dbc/internal/logger"
	"github.com/rafaeljc/dbc/internal/observability"
	"github.com/rafaeljc/dbc/pkg/contract"
)

// ErrorDomain is the ErrorInfo domain attached to violation statuses.
const ErrorDomain = "dbc.contract"

// ViolationStatus converts v to a gRPC status: InvalidArgument for a failed
// precondition, Internal for anything else. An ErrorInfo detail carries the
// category; internal violations hide their message from the client.
func ViolationStatus(v *contract.Violation) *status.Status {
	code := codes.Internal
	msg := "internal contract violation"
	if contract.IsClientError(v) {
		code = codes.InvalidArgument
		msg = v.Error()
	}

	st := status.New(code, msg)
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason: v.Category.String(),
		Domain: ErrorDomain,
		Metadata: map[string]string{
			"category": v.Category.Label(),
		},
	})
	if err != nil {
		return st
	}
	return withDetails
}

// ContractInterceptor translates violations returned by a handler, or
// panicked in ModePanic, into statuses. Other errors and panics pass through.
func ContractInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			v, ok := rec.(*contract.Violation)
			if !ok {
				panic(rec)
			}
			logViolation(ctx, info.FullMethod, v)
			resp, err = nil, ViolationStatus(v).Err()
		}()

		resp, err = handler(ctx, req)
		if v, ok := contract.AsViolation(err); ok {
			logViolation(ctx, info.FullMethod, v)
			return nil, ViolationStatus(v).Err()
		}
		return resp, err
	}
}

// RecoveryInterceptor converts any remaining panic into codes.Internal.
// It belongs outside ContractInterceptor in the chain.
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(ctx).Error("panic recovered",
					slog.String("rpc_method", info.FullMethod),
					slog.String("panic", fmt.Sprint(rec)),
				)
				resp, err = nil, status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

func logViolation(ctx context.Context, method string, v *contract.Violation) {
	level := slog.LevelError
	if contract.IsClientError(v) {
		level = slog.LevelWarn
	}
	logger.FromContext(ctx).Log(ctx, level, "contract violation in rpc",
		slog.String("rpc_method", method),
		slog.Any("violation", v),
	)
}

// RequestLoggerInterceptor resolves or generates a request ID, injects a
// request-scoped logger into the context and logs the outcome of each call.
func RequestLoggerInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		reqID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get("x-request-id"); len(ids) > 0 {
				reqID = ids[0]
			}
		}
		if reqID == "" {
			reqID = uuid.NewString()
		}

		rpcLogger := base.With(
			slog.String("request_id", reqID),
			slog.String("rpc_method", info.FullMethod),
		)
		newCtx := logger.WithContext(ctx, rpcLogger)

		resp, err := handler(newCtx, req)

		code := status.Code(err)
		observability.GRPCReqTotal.WithLabelValues(info.FullMethod, code.String()).Inc()

		level := slog.LevelInfo
		switch code {
		case codes.Internal, codes.Unavailable, codes.DataLoss, codes.Unknown:
			level = slog.LevelError
		case codes.InvalidArgument, codes.DeadlineExceeded, codes.Unimplemented:
			level = slog.LevelWarn
		}

		rpcLogger.Log(newCtx, level, "grpc request completed",
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
			slog.String("peer_addr", peerAddr(ctx)),
		)

		return resp, err
	}
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

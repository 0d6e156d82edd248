package grpcapi_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/rafaeljc/dbc/internal/grpcapi"
	"github.com/rafaeljc/dbc/internal/logger"
	"github.com/rafaeljc/dbc/pkg/contract"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: grpcapi.ConvertMethod}

func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok)
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("status %v carries no ErrorInfo", st)
	return nil
}

func TestContractInterceptor(t *testing.T) {
	t.Parallel()

	raise := contract.New(contract.WithMode(contract.ModeRaise))
	panicking := contract.New(contract.WithMode(contract.ModePanic))

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
		reason   string
		wantMsg  string
	}{
		{
			name:     "Should map a returned precondition to InvalidArgument",
			handler:  func(context.Context, any) (any, error) { return nil, raise.RequireMsg(false, "id must be set") },
			wantCode: codes.InvalidArgument,
			reason:   "precondition",
			wantMsg:  "id must be set",
		},
		{
			name:     "Should map a returned postcondition to Internal",
			handler:  func(context.Context, any) (any, error) { return nil, raise.EnsureMsg(false, "secret detail") },
			wantCode: codes.Internal,
			reason:   "postcondition",
			wantMsg:  "internal contract violation",
		},
		{
			name: "Should map a wrapped invariant to Internal",
			handler: func(context.Context, any) (any, error) {
				return nil, errors.Join(errors.New("saving"), raise.Invariant(false))
			},
			wantCode: codes.Internal,
			reason:   "invariant",
		},
		{
			name: "Should map a panicked precondition to InvalidArgument",
			handler: func(context.Context, any) (any, error) {
				_ = panicking.Require(false)
				return "unreachable", nil
			},
			wantCode: codes.InvalidArgument,
			reason:   "precondition",
			wantMsg:  "Precondition failed.",
		},
		{
			name: "Should map a panicked assertion to Internal",
			handler: func(context.Context, any) (any, error) {
				_ = panicking.Assert(false)
				return "unreachable", nil
			},
			wantCode: codes.Internal,
			reason:   "assertion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := grpcapi.ContractInterceptor()(context.Background(), nil, testInfo, tt.handler)

			assert.Nil(t, resp)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, status.Convert(err).Message())
			}
			info := errorInfo(t, err)
			assert.Equal(t, tt.reason, info.GetReason())
			assert.Equal(t, grpcapi.ErrorDomain, info.GetDomain())
		})
	}
}

func TestContractInterceptor_PassesThrough(t *testing.T) {
	t.Parallel()

	t.Run("Should return successful responses untouched", func(t *testing.T) {
		t.Parallel()

		resp, err := grpcapi.ContractInterceptor()(context.Background(), nil, testInfo,
			func(context.Context, any) (any, error) { return "ok", nil })

		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("Should leave non-contract errors alone", func(t *testing.T) {
		t.Parallel()

		want := status.Error(codes.NotFound, "missing")
		_, err := grpcapi.ContractInterceptor()(context.Background(), nil, testInfo,
			func(context.Context, any) (any, error) { return nil, want })

		assert.Equal(t, want, err)
	})

	t.Run("Should re-panic foreign panics", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "boom", func() {
			_, _ = grpcapi.ContractInterceptor()(context.Background(), nil, testInfo,
				func(context.Context, any) (any, error) { panic("boom") })
		})
	})
}

func TestRecoveryInterceptor(t *testing.T) {
	t.Parallel()

	_, err := grpcapi.RecoveryInterceptor()(context.Background(), nil, testInfo,
		func(context.Context, any) (any, error) { panic("boom") })

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRequestLoggerInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("Should hand the handler a logger scoped to the incoming request id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		base := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-request-id", "req-7"))

		_, err := grpcapi.RequestLoggerInterceptor(base)(ctx, nil, testInfo,
			func(ctx context.Context, _ any) (any, error) {
				logger.FromContext(ctx).Info("inside handler")
				return nil, nil
			})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "msg=\"inside handler\" request_id=req-7")
		assert.Contains(t, buf.String(), "msg=\"grpc request completed\" request_id=req-7")
	})

	t.Run("Should generate a request id when none is sent", func(t *testing.T) {
		t.Parallel()

		base := slog.New(slog.DiscardHandler)

		var scoped *slog.Logger
		_, err := grpcapi.RequestLoggerInterceptor(base)(context.Background(), nil, testInfo,
			func(ctx context.Context, _ any) (any, error) {
				scoped = logger.FromContext(ctx)
				return nil, status.Error(codes.InvalidArgument, "bad fraction")
			})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		require.NotNil(t, scoped)
		assert.NotSame(t, base, scoped)
		assert.NotSame(t, slog.Default(), scoped)
	})
}

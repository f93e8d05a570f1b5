package middleware

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCRecoveryInterceptor_ConvertsPanicToInternal(t *testing.T) {
	interceptor := GRPCRecoveryInterceptor()
	handler := func(ctx context.Context, req any) (any, error) {
		var items []int
		return items[5], nil
	}

	_, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/pricing.v1.PriceService/GetAllPrices"}, handler)

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.Internal {
		t.Errorf("expected INTERNAL, got %v", st.Code())
	}
}

func TestGRPCRecoveryInterceptor_PassesThroughOnSuccess(t *testing.T) {
	interceptor := GRPCRecoveryInterceptor()
	handler := func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/pricing.v1.PriceService/GetPrice"}, handler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Errorf("expected handler response, got %v", resp)
	}
}

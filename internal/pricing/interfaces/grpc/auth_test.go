package grpc

import (
	"context"
	"testing"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func callUnary(t *testing.T, ctx context.Context, token string) error {
	t.Helper()

	interceptor := AuthUnaryInterceptor(token)
	handler := func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	}
	_, err := interceptor(ctx, nil, &grpclib.UnaryServerInfo{FullMethod: "/pricing.v1.PriceService/GetPrice"}, handler)
	return err
}

func TestAuth_MissingToken(t *testing.T) {
	err := callUnary(t, context.Background(), "valid-token")

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.Unauthenticated {
		t.Errorf("expected UNAUTHENTICATED, got %v", st.Code())
	}
	if st.Message() != "Missing token" {
		t.Errorf("expected 'Missing token', got %q", st.Message())
	}
}

func TestAuth_EmptyAuthorizationHeader(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})
	err := callUnary(t, ctx, "valid-token")

	st, _ := status.FromError(err)
	if st.Message() != "Missing token" {
		t.Errorf("expected 'Missing token', got %q", st.Message())
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer wrong-token"))
	err := callUnary(t, ctx, "valid-token")

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.Unauthenticated {
		t.Errorf("expected UNAUTHENTICATED, got %v", st.Code())
	}
	if st.Message() != "Invalid token" {
		t.Errorf("expected 'Invalid token', got %q", st.Message())
	}
}

func TestAuth_BareTokenWithoutSchemeIsInvalid(t *testing.T) {
	// The right secret without the "Bearer " scheme must not authenticate.
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "valid-token"))
	err := callUnary(t, ctx, "valid-token")

	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if st.Code() != codes.Unauthenticated {
		t.Errorf("expected UNAUTHENTICATED, got %v", st.Code())
	}
	if st.Message() != "Invalid token" {
		t.Errorf("expected 'Invalid token', got %q", st.Message())
	}
}

func TestAuth_ValidTokenPassesThrough(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer valid-token"))
	if err := callUnary(t, ctx, "valid-token"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

type authTestStream struct {
	grpclib.ServerStream
	ctx     context.Context
	headers metadata.MD
}

func (s *authTestStream) Context() context.Context {
	return s.ctx
}

func (s *authTestStream) SetHeader(md metadata.MD) error {
	s.headers = metadata.Join(s.headers, md)
	return nil
}

func TestAuthStream_ValidTokenSetsAuthenticatedHeader(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer valid-token"))
	stream := &authTestStream{ctx: ctx}

	interceptor := AuthStreamInterceptor("valid-token")
	handler := func(srv any, ss grpclib.ServerStream) error { return nil }

	info := &grpclib.StreamServerInfo{FullMethod: "/pricing.v1.PriceService/StreamPrices", IsServerStream: true}
	if err := interceptor(nil, stream, info, handler); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	values := stream.headers.Get("x-authenticated")
	if len(values) != 1 || values[0] != "true" {
		t.Errorf("expected x-authenticated=true header, got %v", stream.headers)
	}
}

func TestAuthStream_MissingToken(t *testing.T) {
	stream := &authTestStream{ctx: context.Background()}

	interceptor := AuthStreamInterceptor("valid-token")
	handler := func(srv any, ss grpclib.ServerStream) error {
		t.Fatal("handler must not run without a token")
		return nil
	}

	info := &grpclib.StreamServerInfo{FullMethod: "/pricing.v1.PriceService/StreamPrices", IsServerStream: true}
	err := interceptor(nil, stream, info, handler)
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
}

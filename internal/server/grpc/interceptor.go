package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/server/auth"
)

// ticketInterceptor resolves the call ticket from the incoming metadata
// and injects the verified identity into the handler context. Calls
// without a resolvable ticket never reach the handler.
func (s *GRPCServer) ticketInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "call is not authenticated")
	}

	values := md.Get(common.TicketHeaderName)
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "call is not authenticated")
	}

	identity, ok := s.registry.ResolveToken(values[0])
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "call is not authenticated")
	}

	return handler(auth.WithIdentity(ctx, identity), req)
}

// requestLogInterceptor tags every call with a request id and logs its
// outcome and duration.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (any, error) {

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := handler(ctx, req)

	code := codes.OK
	if err != nil {
		code = status.Code(err)
	}
	s.logger.Info(ctx, "request served",
		"request_id", requestID,
		"method", info.FullMethod,
		"code", code.String(),
		"duration", time.Since(start),
	)

	return resp, err
}

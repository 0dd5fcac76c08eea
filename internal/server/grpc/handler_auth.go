package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soteriapass/pswmgr/internal/common"
	pb "github.com/soteriapass/pswmgr/internal/proto"
)

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticationRequest) (*pb.AuthReply, error) {
	token, err := s.authn.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrStoreUnavailable) {
			return nil, status.Error(codes.Unavailable, "storage is unavailable")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}
	return &pb.AuthReply{Success: true, Token: token}, nil
}

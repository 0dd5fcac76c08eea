package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soteriapass/pswmgr/internal/common"
	pb "github.com/soteriapass/pswmgr/internal/proto"
)

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.UserCreationRequest) (*pb.UserCreationReply, error) {
	caller, err := identityFromCall(ctx)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.provisioning.CreateUser(ctx, caller, req.Username, req.Password, req.Add_2Fa)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthenticated):
			return nil, status.Error(codes.Unauthenticated, "call is not authenticated")
		case errors.Is(err, common.ErrPartialFailure):
			// The account exists but the 2FA enrollment did not complete;
			// the caller must be told the difference from a clean failure.
			return nil, status.Error(codes.Unknown, "user created but two factor enrollment failed")
		case errors.Is(err, common.ErrStoreUnavailable):
			return nil, status.Error(codes.Unavailable, "storage is unavailable")
		default:
			return nil, status.Error(codes.Unknown, "unknown error")
		}
	}

	reply := &pb.UserCreationReply{Success: true}
	if enrollment != nil {
		reply.Secret = enrollment.Secret
		reply.ScratchCodes = enrollment.ScratchCodes
		reply.Qrcode = enrollment.QRCode
	}
	return reply, nil
}

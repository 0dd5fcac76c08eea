package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soteriapass/pswmgr/internal/common"
	pb "github.com/soteriapass/pswmgr/internal/proto"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
)

// identityFromCall extracts the identity placed by the ticket
// interceptor. Its absence means the handler was reached without the
// verifier, which is a wiring fault and is still rejected.
func identityFromCall(ctx context.Context) (string, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "no identity found in the call credentials")
	}
	return identity, nil
}

// vaultError maps store failures to call statuses. Anything the store
// rejects about the data itself, a missing row or a conflicting one,
// surfaces as the same opaque Unknown status; only transport-level
// store outages are distinguished.
func vaultError(err error) error {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "call is not authenticated")
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "storage is unavailable")
	default:
		return status.Error(codes.Unknown, "unknown error")
	}
}

func (s *GRPCServer) ListPasswords(ctx context.Context, _ *pb.SimpleRequest) (*pb.PasswordList, error) {
	identity, err := identityFromCall(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.vault.List(ctx, identity)
	if err != nil {
		return nil, vaultError(err)
	}

	list := &pb.PasswordList{Passwords: make([]*pb.PasswordEntry, 0, len(entries))}
	for _, e := range entries {
		list.Passwords = append(list.Passwords, &pb.PasswordEntry{
			AccountName: e.AccountName,
			Username:    e.Username,
			Password:    e.Password,
			Extra:       e.Extra,
		})
	}
	return list, nil
}

func (s *GRPCServer) AddPassword(ctx context.Context, req *pb.PasswordEntry) (*pb.SimpleReply, error) {
	identity, err := identityFromCall(ctx)
	if err != nil {
		return nil, err
	}

	entry := credstore.Entry{
		AccountName: req.GetAccountName(),
		Username:    req.GetUsername(),
		Password:    req.GetPassword(),
		Extra:       req.GetExtra(),
	}
	if err := s.vault.Add(ctx, identity, entry); err != nil {
		return nil, vaultError(err)
	}
	return &pb.SimpleReply{Success: true}, nil
}

func (s *GRPCServer) DeletePassword(ctx context.Context, req *pb.PasswordEntry) (*pb.SimpleReply, error) {
	identity, err := identityFromCall(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.vault.Delete(ctx, identity, req.GetAccountName()); err != nil {
		return nil, vaultError(err)
	}
	return &pb.SimpleReply{Success: true}, nil
}

func (s *GRPCServer) ModifyPassword(ctx context.Context, req *pb.PasswordEntry) (*pb.SimpleReply, error) {
	identity, err := identityFromCall(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.vault.Modify(ctx, identity, req.GetAccountName(), req.GetPassword()); err != nil {
		return nil, vaultError(err)
	}
	return &pb.SimpleReply{Success: true}, nil
}

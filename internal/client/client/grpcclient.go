package client

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"

	"github.com/soteriapass/pswmgr/internal/client/config"
	pb "github.com/soteriapass/pswmgr/internal/proto"
	"github.com/soteriapass/pswmgr/internal/tlsx"
)

// GRPCClient talks to the three backend endpoints. The authentication
// connection is opened at construction; the vault and user management
// connections are opened after Authenticate succeeds, carrying the
// issued token as per-RPC credentials.
type GRPCClient struct {
	cfg   *config.Config
	creds credentials.TransportCredentials

	authConn  *grpc.ClientConn
	vaultConn *grpc.ClientConn
	mgmtConn  *grpc.ClientConn

	auth  pb.AuthenticationClient
	vault pb.PasswordManagerClient
	mgmt  pb.UserManagementClient
}

func NewGRPCClient(cfg *config.Config) (*GRPCClient, error) {
	creds, err := tlsx.ClientCredentials(cfg.CAFile, cfg.ServerName)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(cfg.AuthAddr,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.CodecName)))
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		cfg:      cfg,
		creds:    creds,
		authConn: conn,
		auth:     pb.NewAuthenticationClient(conn),
	}, nil
}

// Authenticate exchanges credentials for a token and opens the token
// bearing connections. Re-authenticating replaces them.
func (s *GRPCClient) Authenticate(ctx context.Context, username, password string) error {
	resp, err := s.auth.Authenticate(ctx, &pb.AuthenticationRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	if !resp.Success {
		return ErrUnauthorized
	}

	if err := s.closeAuthorized(); err != nil {
		return err
	}
	return s.openAuthorized(resp.Token)
}

func (s *GRPCClient) openAuthorized(token string) error {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(s.creds),
		grpc.WithPerRPCCredentials(ticketCreds{token: token}),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(pb.CodecName)),
	}

	vaultConn, err := grpc.NewClient(s.cfg.VaultAddr, opts...)
	if err != nil {
		return err
	}

	mgmtConn, err := grpc.NewClient(s.cfg.UserMgmtAddr, opts...)
	if err != nil {
		vaultConn.Close()
		return err
	}

	s.vaultConn = vaultConn
	s.vault = pb.NewPasswordManagerClient(vaultConn)
	s.mgmtConn = mgmtConn
	s.mgmt = pb.NewUserManagementClient(mgmtConn)
	return nil
}

func (s *GRPCClient) closeAuthorized() error {
	var errs []error
	if s.vaultConn != nil {
		errs = append(errs, s.vaultConn.Close())
		s.vaultConn, s.vault = nil, nil
	}
	if s.mgmtConn != nil {
		errs = append(errs, s.mgmtConn.Close())
		s.mgmtConn, s.mgmt = nil, nil
	}
	return errors.Join(errs...)
}

func (s *GRPCClient) ListPasswords(ctx context.Context) ([]Credential, error) {
	if s.vault == nil {
		return nil, ErrNotAuthenticated
	}

	resp, err := s.vault.ListPasswords(ctx, &pb.SimpleRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	creds := make([]Credential, 0, len(resp.Passwords))
	for _, p := range resp.Passwords {
		creds = append(creds, Credential{
			AccountName: p.GetAccountName(),
			Username:    p.GetUsername(),
			Password:    p.GetPassword(),
			Extra:       p.GetExtra(),
		})
	}
	return creds, nil
}

func (s *GRPCClient) AddPassword(ctx context.Context, c Credential) error {
	if s.vault == nil {
		return ErrNotAuthenticated
	}

	req := &pb.PasswordEntry{
		AccountName: c.AccountName,
		Username:    c.Username,
		Password:    c.Password,
		Extra:       c.Extra,
	}
	if _, err := s.vault.AddPassword(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) DeletePassword(ctx context.Context, accountName string) error {
	if s.vault == nil {
		return ErrNotAuthenticated
	}

	if _, err := s.vault.DeletePassword(ctx, &pb.PasswordEntry{AccountName: accountName}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ModifyPassword(ctx context.Context, accountName, newPassword string) error {
	if s.vault == nil {
		return ErrNotAuthenticated
	}

	req := &pb.PasswordEntry{AccountName: accountName, Password: newPassword}
	if _, err := s.vault.ModifyPassword(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateUser(ctx context.Context, username, password string, add2FA bool) (*Enrollment, error) {
	if s.mgmt == nil {
		return nil, ErrNotAuthenticated
	}

	req := &pb.UserCreationRequest{Username: username, Password: password, Add_2Fa: add2FA}
	resp, err := s.mgmt.CreateUser(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	if resp.Secret == "" && len(resp.ScratchCodes) == 0 {
		return nil, nil
	}
	return &Enrollment{
		Secret:       resp.Secret,
		ScratchCodes: resp.ScratchCodes,
		QRCode:       resp.Qrcode,
	}, nil
}

func (s *GRPCClient) Close() error {
	err := s.closeAuthorized()
	if s.authConn != nil {
		err = errors.Join(err, s.authConn.Close())
	}
	return err
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	default:
		return err
	}
}

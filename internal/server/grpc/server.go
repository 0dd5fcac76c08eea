// Package grpc exposes the three listening endpoints: authentication,
// password vault, and user management. The vault and user-management
// endpoints install the ticket verifier so no handler runs without a
// verified identity.
package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/soteriapass/pswmgr/internal/logging"
	pb "github.com/soteriapass/pswmgr/internal/proto"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/config"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
	"github.com/soteriapass/pswmgr/internal/server/provisioning"
	"github.com/soteriapass/pswmgr/internal/tlsx"
)

// Authenticator verifies credentials and issues bearer tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Vault performs the password operations for a verified identity.
type Vault interface {
	List(ctx context.Context, username string) ([]credstore.Entry, error)
	Add(ctx context.Context, username string, e credstore.Entry) error
	Modify(ctx context.Context, username, accountName, newPassword string) error
	Delete(ctx context.Context, username, accountName string) error
}

// Provisioner creates users and optional 2FA enrollments.
type Provisioner interface {
	CreateUser(ctx context.Context, caller, username, password string, add2FA bool) (*provisioning.Enrollment, error)
}

// GRPCServer implements all three services; each is registered on its
// own listening endpoint in Run.
type GRPCServer struct {
	pb.UnimplementedAuthenticationServer
	pb.UnimplementedPasswordManagerServer
	pb.UnimplementedUserManagementServer

	cfg          *config.Config
	logger       logging.Logger
	registry     *auth.Registry
	authn        Authenticator
	vault        Vault
	provisioning Provisioner
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, registry *auth.Registry,
	authn Authenticator, vault Vault, provisioner Provisioner) *GRPCServer {
	return &GRPCServer{
		cfg:          cfg,
		logger:       l.With("module", "grpc_server"),
		registry:     registry,
		authn:        authn,
		vault:        vault,
		provisioning: provisioner,
	}
}

type endpoint struct {
	name     string
	addr     string
	creds    credentials.TransportCredentials
	register func(*grpc.Server)
	verify   bool
}

// Run serves all three endpoints until ctx is done, then gracefully
// stops each. Any listen or serve failure shuts the whole server down.
func (s *GRPCServer) Run(ctx context.Context) error {

	creds, err := tlsx.ServerCredentials(s.cfg.CertFile, s.cfg.KeyFile, s.cfg.CAFile)
	if err != nil {
		return fmt.Errorf("tls setup error: %w", err)
	}

	// User management may carry its own certificate pair; the CA bundle
	// stays shared across endpoints.
	userMgmtCreds := creds
	if s.cfg.UserMgmtCertFile != "" {
		userMgmtCreds, err = tlsx.ServerCredentials(s.cfg.UserMgmtCertFile, s.cfg.UserMgmtKeyFile, s.cfg.CAFile)
		if err != nil {
			return fmt.Errorf("user management tls setup error: %w", err)
		}
	}

	endpoints := []endpoint{
		{
			name:     "authentication",
			addr:     s.cfg.AuthAddr,
			creds:    creds,
			register: func(srv *grpc.Server) { pb.RegisterAuthenticationServer(srv, s) },
		},
		{
			name:     "password_manager",
			addr:     s.cfg.VaultAddr,
			creds:    creds,
			register: func(srv *grpc.Server) { pb.RegisterPasswordManagerServer(srv, s) },
			verify:   true,
		},
		{
			name:     "user_management",
			addr:     s.cfg.UserMgmtAddr,
			creds:    userMgmtCreds,
			register: func(srv *grpc.Server) { pb.RegisterUserManagementServer(srv, s) },
			verify:   true,
		},
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(endpoints))
	var wg sync.WaitGroup

	for _, ep := range endpoints {
		listen, err := net.Listen("tcp", ep.addr)
		if err != nil {
			cancel()
			wg.Wait()
			return fmt.Errorf("listen error on %s: %w", ep.addr, err)
		}

		interceptors := []grpc.UnaryServerInterceptor{s.requestLogInterceptor}
		if ep.verify {
			interceptors = append(interceptors, s.ticketInterceptor)
		}

		srv := grpc.NewServer(grpc.Creds(ep.creds), grpc.ChainUnaryInterceptor(interceptors...))
		ep.register(srv)

		s.logger.Info(ctx, "endpoint listening", "service", ep.name, "address", ep.addr)

		wg.Add(2)
		go func(name string) {
			defer wg.Done()
			if err := srv.Serve(listen); err != nil {
				errCh <- fmt.Errorf("serve error on %s: %w", name, err)
				cancel()
			}
		}(ep.name)
		go func(name string) {
			defer wg.Done()
			<-ctx.Done()
			s.logger.Info(context.Background(), "stopping endpoint", "service", name)
			srv.GracefulStop()
		}(ep.name)
	}

	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

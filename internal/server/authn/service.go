// Package authn implements the authentication service: credential
// verification (or first-run bootstrap) and bearer-token issuance.
package authn

import (
	"context"
	"errors"
	"fmt"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/cryptox"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
)

// Service verifies credentials against the credential store and issues
// tokens through the registry. It is the only writer of the registry.
type Service struct {
	store    credstore.Store
	registry *auth.Registry
}

func NewService(store credstore.Store, registry *auth.Registry) *Service {
	return &Service{store: store, registry: registry}
}

// Authenticate validates username/password and returns a bearer token.
//
// While the store holds zero users every caller is treated as the
// bootstrap identity and succeeds unconditionally, so the very first
// administrative client can authenticate before any account exists.
// Store failures surface as ErrStoreUnavailable; bad credentials as
// ErrInvalidCredentials, with no distinction between an unknown user
// and a wrong password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	count, err := s.store.UserCount(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if count == 0 {
		// Reuse a live bootstrap token rather than churning the registry.
		if token, ok := s.registry.ResolveUser(common.BootstrapUser); ok {
			return token, nil
		}
		return s.registry.Issue(common.BootstrapUser)
	}

	salt, err := s.store.UserSalt(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
		}
		// Unknown user: hash against a deterministic decoy salt so the
		// comparison fails without leaking that the account is missing.
		salt = cryptox.DecoySalt(username)
	}

	hash := cryptox.HashAndSalt(password, salt, cryptox.HashIterations, cryptox.HashLength)

	ok, err := s.store.ValidPassword(ctx, username, hash)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.registry.Issue(username)
}

// Package provisioning implements user creation and optional 2FA
// enrollment.
package provisioning

import (
	"context"
	"fmt"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/cryptox"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
	"github.com/soteriapass/pswmgr/internal/server/qrx"
)

// Enrollment is the one-time 2FA disclosure returned to the caller.
// Nothing in it is retrievable again through this service. All fields
// are empty when 2FA was not requested.
type Enrollment struct {
	Secret       string
	ScratchCodes []int32
	QRCode       []byte
}

type Service struct {
	store    credstore.Store
	registry *auth.Registry
	renderer qrx.Renderer
}

func NewService(store credstore.Store, registry *auth.Registry, renderer qrx.Renderer) *Service {
	return &Service{store: store, registry: registry, renderer: renderer}
}

// CreateUser registers a new account for the given caller identity and,
// when requested, enrolls 2FA. User ids are assigned as count+1 and
// never reclaimed.
//
// The bootstrap identity may only create the first user: once the store
// holds any account a bootstrap caller fails with ErrUnauthenticated,
// and a successful creation revokes the bootstrap token.
//
// A failure after the user row committed (2FA persistence or QR
// rendering) returns ErrPartialFailure: the response reports failure
// while the user continues to exist, a state operators must reconcile
// manually.
func (s *Service) CreateUser(ctx context.Context, caller, username, password string, add2FA bool) (*Enrollment, error) {
	count, err := s.store.UserCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if caller == common.BootstrapUser && count > 0 {
		return nil, fmt.Errorf("%w: bootstrap identity is no longer honored", common.ErrUnauthenticated)
	}

	salt := cryptox.NewSalt(cryptox.SaltLength)
	user := credstore.User{
		ID:           int64(count) + 1,
		Username:     username,
		PasswordHash: cryptox.HashAndSalt(password, salt, cryptox.HashIterations, cryptox.HashLength),
		Salt:         salt,
		Iterations:   cryptox.HashIterations,
		Admin:        true,
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	// The first real account ends the bootstrap window immediately; a
	// retained bootstrap token must stop resolving.
	s.registry.Revoke(common.BootstrapUser)

	if !add2FA {
		return &Enrollment{}, nil
	}

	secret := cryptox.NewTOTPSecret(cryptox.TOTPSecretLength)

	codes := make([]int32, cryptox.ScratchCodeCount)
	for i := range codes {
		code, err := cryptox.GenerateScratchCode()
		if err != nil {
			return nil, fmt.Errorf("%w: scratch code generation: %v", common.ErrPartialFailure, err)
		}
		codes[i] = code
	}

	if err := s.store.InsertTwoFactor(ctx, user.ID, secret, codes); err != nil {
		return nil, fmt.Errorf("%w: 2fa enrollment: %v", common.ErrPartialFailure, err)
	}

	qr, err := s.renderer.Render(ProvisioningURI(username, secret))
	if err != nil {
		return nil, fmt.Errorf("%w: qr rendering: %v", common.ErrPartialFailure, err)
	}

	return &Enrollment{Secret: secret, ScratchCodes: codes, QRCode: qr}, nil
}

// ProvisioningURI builds the otpauth URI embedding the shared secret for
// out-of-band enrollment.
func ProvisioningURI(username, secret string) string {
	return fmt.Sprintf("otpauth://totp/pswmgr(%s)?secret=%s", username, secret)
}

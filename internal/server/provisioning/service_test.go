package provisioning

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/cryptox"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
	"github.com/soteriapass/pswmgr/internal/server/credstore/credstoretest"
)

// ---- fakes ----

type fakeRenderer struct {
	img []byte
	err error
}

func (f *fakeRenderer) Render(uri string) ([]byte, error) {
	return f.img, f.err
}

func newTestService(store *credstoretest.Fake) (*Service, *auth.Registry) {
	registry := auth.NewRegistry(0)
	return NewService(store, registry, &fakeRenderer{img: []byte("png")}), registry
}

func TestCreateUser_AssignsNextID(t *testing.T) {
	store := credstoretest.New()
	store.Users["existing"] = credstore.User{ID: 1, Username: "existing"}
	s, _ := newTestService(store)

	enrollment, err := s.CreateUser(context.Background(), "existing", "alice", "pw1", false)
	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Empty(t, enrollment.Secret)

	u, ok := store.Users["alice"]
	require.True(t, ok)
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, cryptox.HashIterations, u.Iterations)
	assert.Len(t, u.Salt, cryptox.SaltLength)
	assert.Equal(t,
		cryptox.HashAndSalt("pw1", u.Salt, cryptox.HashIterations, cryptox.HashLength),
		u.PasswordHash)
}

func TestCreateUser_With2FA(t *testing.T) {
	store := credstoretest.New()
	store.Users["admin"] = credstore.User{ID: 1, Username: "admin"}
	s, _ := newTestService(store)

	enrollment, err := s.CreateUser(context.Background(), "admin", "alice", "pw1", true)
	require.NoError(t, err)

	assert.Len(t, enrollment.Secret, cryptox.TOTPSecretLength)
	assert.Len(t, enrollment.ScratchCodes, cryptox.ScratchCodeCount)
	assert.NotEmpty(t, enrollment.QRCode)

	// Persisted artifacts match the disclosed ones.
	u := store.Users["alice"]
	assert.Equal(t, enrollment.Secret, store.Secrets[u.ID])
	assert.Equal(t, enrollment.ScratchCodes, store.Scratch[u.ID])
}

func TestCreateUser_2FAPersistenceFailureIsPartial(t *testing.T) {
	store := credstoretest.New()
	store.Users["admin"] = credstore.User{ID: 1, Username: "admin"}
	store.TwoFactorErr = errors.New("disk full")
	s, _ := newTestService(store)

	_, err := s.CreateUser(context.Background(), "admin", "alice", "pw1", true)
	require.ErrorIs(t, err, common.ErrPartialFailure)

	// The user row committed before the enrollment failed.
	_, ok := store.Users["alice"]
	assert.True(t, ok)
}

func TestCreateUser_RenderFailureIsPartial(t *testing.T) {
	store := credstoretest.New()
	store.Users["admin"] = credstore.User{ID: 1, Username: "admin"}
	registry := auth.NewRegistry(0)
	s := NewService(store, registry, &fakeRenderer{err: errors.New("renderer missing")})

	_, err := s.CreateUser(context.Background(), "admin", "alice", "pw1", true)
	require.ErrorIs(t, err, common.ErrPartialFailure)

	_, ok := store.Users["alice"]
	assert.True(t, ok)
}

func TestCreateUser_BootstrapCreatesFirstUserOnly(t *testing.T) {
	store := credstoretest.New()
	s, registry := newTestService(store)

	_, err := registry.Issue(common.BootstrapUser)
	require.NoError(t, err)

	_, err = s.CreateUser(context.Background(), common.BootstrapUser, "alice", "pw1", false)
	require.NoError(t, err)

	// The bootstrap token stops resolving the moment the first user exists.
	_, ok := registry.ResolveUser(common.BootstrapUser)
	assert.False(t, ok)

	// And the bootstrap identity may not create further users.
	_, err = s.CreateUser(context.Background(), common.BootstrapUser, "mallory", "pw2", false)
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestCreateUser_StoreFailures(t *testing.T) {
	store := credstoretest.New()
	store.Users["admin"] = credstore.User{ID: 1, Username: "admin"}
	store.InsertErr = errors.New("constraint violation")
	s, _ := newTestService(store)

	_, err := s.CreateUser(context.Background(), "admin", "alice", "pw1", false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrPartialFailure)
}

func TestProvisioningURI(t *testing.T) {
	uri := ProvisioningURI("alice", "SECRET234")

	assert.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
	assert.Contains(t, uri, "pswmgr(alice)")
	assert.Contains(t, uri, "secret=SECRET234")
}

package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/cryptox"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func insertTestUser(t *testing.T, s Store, id int64, username, password string) User {
	t.Helper()

	salt := cryptox.NewSalt(cryptox.SaltLength)
	u := User{
		ID:           id,
		Username:     username,
		PasswordHash: cryptox.HashAndSalt(password, salt, cryptox.HashIterations, cryptox.HashLength),
		Salt:         salt,
		Iterations:   cryptox.HashIterations,
		Admin:        true,
	}
	require.NoError(t, s.InsertUser(context.Background(), u))
	return u
}

func collect(t *testing.T, s Store, userID int64) []Entry {
	t.Helper()

	var entries []Entry
	for e, err := range s.Passwords(context.Background(), userID) {
		require.NoError(t, err)
		entries = append(entries, e)
	}
	return entries
}

func TestSQLiteStore_UserLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	count, err := s.UserCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	u := insertTestUser(t, s, 1, "alice", "pw1")

	count, err = s.UserCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	salt, err := s.UserSalt(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.Salt, salt)

	_, err = s.UserSalt(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)

	id, err := s.UserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.UserID(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStore_ValidPassword(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := insertTestUser(t, s, 1, "alice", "pw1")

	ok, err := s.ValidPassword(ctx, "alice", u.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	wrong := cryptox.HashAndSalt("wrong", u.Salt, cryptox.HashIterations, cryptox.HashLength)
	ok, err = s.ValidPassword(ctx, "alice", wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown user is not an error, it just never matches.
	ok, err = s.ValidPassword(ctx, "ghost", u.PasswordHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_PasswordCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, 1, "alice", "pw1")
	insertTestUser(t, s, 2, "bob", "pw2")

	e := Entry{AccountName: "email", Username: "alice@example.com", Password: "s3cret", Extra: "personal"}
	require.NoError(t, s.AddPassword(ctx, 1, e))

	entries := collect(t, s, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, e, entries[0])

	// Other owners never see the row.
	assert.Empty(t, collect(t, s, 2))

	require.NoError(t, s.ModifyPassword(ctx, 1, "email", "rotated"))
	entries = collect(t, s, 1)
	require.Len(t, entries, 1)
	assert.Equal(t, "rotated", entries[0].Password)
	assert.Equal(t, e.Username, entries[0].Username)
	assert.Equal(t, e.Extra, entries[0].Extra)

	require.NoError(t, s.DeletePassword(ctx, 1, "email"))
	assert.Empty(t, collect(t, s, 1))
}

func TestSQLiteStore_MissingRowsReportNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, 1, "alice", "pw1")

	assert.ErrorIs(t, s.DeletePassword(ctx, 1, "nope"), common.ErrNotFound)
	assert.ErrorIs(t, s.ModifyPassword(ctx, 1, "nope", "x"), common.ErrNotFound)
}

func TestSQLiteStore_PasswordsIteratorRestarts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, 1, "alice", "pw1")
	require.NoError(t, s.AddPassword(ctx, 1, Entry{AccountName: "a"}))
	require.NoError(t, s.AddPassword(ctx, 1, Entry{AccountName: "b"}))

	seq := s.Passwords(ctx, 1)

	// Early break must not poison a later full pass.
	for range seq {
		break
	}

	var names []string
	for e, err := range seq {
		require.NoError(t, err)
		names = append(names, e.AccountName)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestSQLiteStore_InsertTwoFactor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, 1, "alice", "pw1")

	codes := []int32{11111111, 22222222, 33333333, 44444444, 55555555, 66666666}
	require.NoError(t, s.InsertTwoFactor(ctx, 1, "SECRETSECRETSECRETSECRETAB", codes))

	// A second enrollment for the same user conflicts on the primary key
	// and must roll back as a unit.
	err := s.InsertTwoFactor(ctx, 1, "OTHERSECRET", codes)
	require.Error(t, err)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	insertTestUser(t, s, 1, "alice", "pw1")
	require.NoError(t, s.Close())

	// Reopening the same file replays no migrations and keeps the data.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	count, err := s.UserCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

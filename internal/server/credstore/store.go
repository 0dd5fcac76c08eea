// Package credstore persists users, vault entries, and 2FA enrollments.
// It exposes a single Store port with sqlite and postgres backends; the
// backend is chosen from the DSN at open time.
package credstore

import (
	"context"
	"iter"
)

// User is the stored identity record. IDs are assigned by the
// provisioning service as count+1 and are never reused.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	Salt         []byte
	Iterations   int
	Admin        bool
}

// Entry is a single vault row, always scoped to its owning user id.
type Entry struct {
	AccountName string
	Username    string
	Password    string
	Extra       string
}

// Store is the persistence port consumed by the authentication, vault,
// and provisioning services. Implementations must provide at least
// single-statement atomicity; lookups that find nothing return
// common.ErrNotFound.
type Store interface {
	// UserCount reports the number of registered users.
	UserCount(ctx context.Context) (int, error)

	// UserSalt returns the stored salt for username.
	UserSalt(ctx context.Context, username string) ([]byte, error)

	// ValidPassword reports whether hash matches the stored password
	// hash for username. An unknown username is not an error; it simply
	// never matches.
	ValidPassword(ctx context.Context, username string, hash []byte) (bool, error)

	// UserID resolves username to its numeric id.
	UserID(ctx context.Context, username string) (int64, error)

	// InsertUser persists a new user row.
	InsertUser(ctx context.Context, u User) error

	// InsertTwoFactor persists the 2FA secret and scratch codes for a
	// user in one transaction. Separate from InsertUser: a failure here
	// leaves the already-committed user row in place.
	InsertTwoFactor(ctx context.Context, userID int64, secret string, scratchCodes []int32) error

	// Passwords returns a lazy sequence of the user's vault rows.
	// Ranging over the result executes the query; ranging again
	// re-executes it from the start.
	Passwords(ctx context.Context, userID int64) iter.Seq2[Entry, error]

	// AddPassword inserts a vault row for the user.
	AddPassword(ctx context.Context, userID int64, e Entry) error

	// DeletePassword removes the named entry for the user.
	DeletePassword(ctx context.Context, userID int64, accountName string) error

	// ModifyPassword updates only the password field of the named entry.
	ModifyPassword(ctx context.Context, userID int64, accountName, newPassword string) error

	Close() error
}

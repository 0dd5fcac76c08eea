// Package credstoretest provides an in-memory Store fake for service and
// handler tests. It records every invocation so tests can assert that
// rejected calls never reached the store.
package credstoretest

import (
	"context"
	"crypto/subtle"
	"iter"
	"sort"
	"sync"

	"github.com/soteriapass/pswmgr/internal/common"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
)

// Fake is an in-memory credstore.Store. Error fields, when set, are
// returned by the corresponding method instead of touching the state.
type Fake struct {
	mu sync.Mutex

	Users   map[string]credstore.User            // by username
	Entries map[int64]map[string]credstore.Entry // by user id, account name
	Secrets map[int64]string
	Scratch map[int64][]int32

	CountErr     error
	SaltErr      error
	ValidErr     error
	UserIDErr    error
	InsertErr    error
	TwoFactorErr error
	ListErr      error
	AddErr       error
	DeleteErr    error
	ModifyErr    error

	// Calls counts every store invocation regardless of outcome.
	Calls int
}

func New() *Fake {
	return &Fake{
		Users:   make(map[string]credstore.User),
		Entries: make(map[int64]map[string]credstore.Entry),
		Secrets: make(map[int64]string),
		Scratch: make(map[int64][]int32),
	}
}

func (f *Fake) record() {
	f.Calls++
}

func (f *Fake) UserCount(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	return len(f.Users), nil
}

func (f *Fake) UserSalt(ctx context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.SaltErr != nil {
		return nil, f.SaltErr
	}
	u, ok := f.Users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u.Salt, nil
}

func (f *Fake) ValidPassword(ctx context.Context, username string, hash []byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.ValidErr != nil {
		return false, f.ValidErr
	}
	u, ok := f.Users[username]
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare(u.PasswordHash, hash) == 1, nil
}

func (f *Fake) UserID(ctx context.Context, username string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.UserIDErr != nil {
		return 0, f.UserIDErr
	}
	u, ok := f.Users[username]
	if !ok {
		return 0, common.ErrNotFound
	}
	return u.ID, nil
}

func (f *Fake) InsertUser(ctx context.Context, u credstore.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.Users[u.Username] = u
	return nil
}

func (f *Fake) InsertTwoFactor(ctx context.Context, userID int64, secret string, scratchCodes []int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.TwoFactorErr != nil {
		return f.TwoFactorErr
	}
	f.Secrets[userID] = secret
	f.Scratch[userID] = append([]int32(nil), scratchCodes...)
	return nil
}

func (f *Fake) Passwords(ctx context.Context, userID int64) iter.Seq2[credstore.Entry, error] {
	return func(yield func(credstore.Entry, error) bool) {
		f.mu.Lock()
		f.record()
		if f.ListErr != nil {
			f.mu.Unlock()
			yield(credstore.Entry{}, f.ListErr)
			return
		}
		names := make([]string, 0, len(f.Entries[userID]))
		for name := range f.Entries[userID] {
			names = append(names, name)
		}
		sort.Strings(names)
		entries := make([]credstore.Entry, 0, len(names))
		for _, name := range names {
			entries = append(entries, f.Entries[userID][name])
		}
		f.mu.Unlock()

		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (f *Fake) AddPassword(ctx context.Context, userID int64, e credstore.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.AddErr != nil {
		return f.AddErr
	}
	if f.Entries[userID] == nil {
		f.Entries[userID] = make(map[string]credstore.Entry)
	}
	f.Entries[userID][e.AccountName] = e
	return nil
}

func (f *Fake) DeletePassword(ctx context.Context, userID int64, accountName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.Entries[userID][accountName]; !ok {
		return common.ErrNotFound
	}
	delete(f.Entries[userID], accountName)
	return nil
}

func (f *Fake) ModifyPassword(ctx context.Context, userID int64, accountName, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record()
	if f.ModifyErr != nil {
		return f.ModifyErr
	}
	e, ok := f.Entries[userID][accountName]
	if !ok {
		return common.ErrNotFound
	}
	e.Password = newPassword
	f.Entries[userID][accountName] = e
	return nil
}

func (f *Fake) Close() error {
	return nil
}

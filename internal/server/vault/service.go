// Package vault implements the password-vault operations. Every method
// takes the verified identity resolved by the call verifier and maps it
// to the owning user id server-side; the owner is never taken from the
// request.
package vault

import (
	"context"

	"github.com/soteriapass/pswmgr/internal/server/credstore"
)

type Service struct {
	store credstore.Store
}

func NewService(store credstore.Store) *Service {
	return &Service{store: store}
}

// List returns all vault entries owned by the identified user.
func (s *Service) List(ctx context.Context, username string) ([]credstore.Entry, error) {
	userID, err := s.store.UserID(ctx, username)
	if err != nil {
		return nil, err
	}

	var entries []credstore.Entry
	for e, err := range s.store.Passwords(ctx, userID) {
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Add inserts a vault entry for the identified user.
func (s *Service) Add(ctx context.Context, username string, e credstore.Entry) error {
	userID, err := s.store.UserID(ctx, username)
	if err != nil {
		return err
	}
	return s.store.AddPassword(ctx, userID, e)
}

// Modify changes only the password field of the named entry.
func (s *Service) Modify(ctx context.Context, username, accountName, newPassword string) error {
	userID, err := s.store.UserID(ctx, username)
	if err != nil {
		return err
	}
	return s.store.ModifyPassword(ctx, userID, accountName, newPassword)
}

// Delete removes the named entry for the identified user.
func (s *Service) Delete(ctx context.Context, username, accountName string) error {
	userID, err := s.store.UserID(ctx, username)
	if err != nil {
		return err
	}
	return s.store.DeletePassword(ctx, userID, accountName)
}

package credstore

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/soteriapass/pswmgr/internal/common"
)

// PostgresStore backs the credential store with postgres for server
// deployments that outgrow the sqlite file.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) UserCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) UserSalt(ctx context.Context, username string) ([]byte, error) {
	var salt []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT salt FROM users WHERE username = $1`, username).Scan(&salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching salt: %w", err)
	}
	return salt, nil
}

func (s *PostgresStore) ValidPassword(ctx context.Context, username string, hash []byte) (bool, error) {
	var stored []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE username = $1`, username).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error fetching password hash: %w", err)
	}
	return subtle.ConstantTimeCompare(stored, hash) == 1, nil
}

func (s *PostgresStore) UserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("error fetching user id: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) InsertUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, salt, iterations, admin)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Username, u.PasswordHash, u.Salt, u.Iterations, u.Admin)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertTwoFactor(ctx context.Context, userID int64, secret string, scratchCodes []int32) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO two_factor (user_id, secret) VALUES ($1, $2)`, userID, secret)
		if err != nil {
			return fmt.Errorf("error inserting 2fa secret: %w", err)
		}
		for i, code := range scratchCodes {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO scratch_codes (user_id, position, code) VALUES ($1, $2, $3)`,
				userID, i, code)
			if err != nil {
				return fmt.Errorf("error inserting scratch code: %w", err)
			}
		}
		return nil
	})
}

func (s *PostgresStore) Passwords(ctx context.Context, userID int64) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		rows, err := s.db.QueryContext(ctx,
			`SELECT account_name, username, password, extra FROM passwords WHERE user_id = $1`,
			userID)
		if err != nil {
			yield(Entry{}, fmt.Errorf("error listing passwords: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var e Entry
			if err := rows.Scan(&e.AccountName, &e.Username, &e.Password, &e.Extra); err != nil {
				yield(Entry{}, fmt.Errorf("error scanning password row: %w", err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Entry{}, fmt.Errorf("error iterating password rows: %w", err))
		}
	}
}

func (s *PostgresStore) AddPassword(ctx context.Context, userID int64, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO passwords (user_id, account_name, username, password, extra)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, e.AccountName, e.Username, e.Password, e.Extra)
	if err != nil {
		return fmt.Errorf("error inserting password: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeletePassword(ctx context.Context, userID int64, accountName string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM passwords WHERE user_id = $1 AND account_name = $2`,
		userID, accountName)
	if err != nil {
		return fmt.Errorf("error deleting password: %w", err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) ModifyPassword(ctx context.Context, userID int64, accountName, newPassword string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE passwords SET password = $1 WHERE user_id = $2 AND account_name = $3`,
		newPassword, userID, accountName)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return requireAffected(res)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

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

// SQLiteStore is the file-backed Store used by default deployments.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) UserCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) UserSalt(ctx context.Context, username string) ([]byte, error) {
	var salt []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT salt FROM users WHERE username = ?`, username).Scan(&salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error fetching salt: %w", err)
	}
	return salt, nil
}

func (s *SQLiteStore) ValidPassword(ctx context.Context, username string, hash []byte) (bool, error) {
	var stored []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE username = ?`, username).Scan(&stored)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error fetching password hash: %w", err)
	}
	return subtle.ConstantTimeCompare(stored, hash) == 1, nil
}

func (s *SQLiteStore) UserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("error fetching user id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) InsertUser(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, salt, iterations, admin)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.Salt, u.Iterations, u.Admin)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (s *SQLiteStore) InsertTwoFactor(ctx context.Context, userID int64, secret string, scratchCodes []int32) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO two_factor (user_id, secret) VALUES (?, ?)`, userID, secret)
		if err != nil {
			return fmt.Errorf("error inserting 2fa secret: %w", err)
		}
		for i, code := range scratchCodes {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO scratch_codes (user_id, position, code) VALUES (?, ?, ?)`,
				userID, i, code)
			if err != nil {
				return fmt.Errorf("error inserting scratch code: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) Passwords(ctx context.Context, userID int64) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		rows, err := s.db.QueryContext(ctx,
			`SELECT account_name, username, password, extra FROM passwords WHERE user_id = ?`,
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

func (s *SQLiteStore) AddPassword(ctx context.Context, userID int64, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO passwords (user_id, account_name, username, password, extra)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, e.AccountName, e.Username, e.Password, e.Extra)
	if err != nil {
		return fmt.Errorf("error inserting password: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeletePassword(ctx context.Context, userID int64, accountName string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM passwords WHERE user_id = ? AND account_name = ?`,
		userID, accountName)
	if err != nil {
		return fmt.Errorf("error deleting password: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) ModifyPassword(ctx context.Context, userID int64, accountName, newPassword string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE passwords SET password = ? WHERE user_id = ? AND account_name = ?`,
		newPassword, userID, accountName)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return requireAffected(res)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// requireAffected maps a zero-row write to ErrNotFound so the service
// layer can tell "no such account" apart from a store failure.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

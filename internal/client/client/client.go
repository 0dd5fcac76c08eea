package client

import "context"

// Credential is a single vault record as seen by the CLI.
type Credential struct {
	AccountName string
	Username    string
	Password    string
	Extra       string
}

// Enrollment is the one-time 2FA disclosure returned by CreateUser.
type Enrollment struct {
	Secret       string
	ScratchCodes []int32
	QRCode       []byte
}

type Client interface {
	Close() error
	Authenticate(ctx context.Context, username, password string) error
	ListPasswords(ctx context.Context) ([]Credential, error)
	AddPassword(ctx context.Context, c Credential) error
	DeletePassword(ctx context.Context, accountName string) error
	ModifyPassword(ctx context.Context, accountName, newPassword string) error
	CreateUser(ctx context.Context, username, password string, add2FA bool) (*Enrollment, error)
}

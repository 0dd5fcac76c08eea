// Package cryptox implements the password-hashing and secret-generation
// primitives used by the authentication and provisioning services.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	"github.com/soteriapass/pswmgr/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

// Fixed hashing parameters. Every stored password hash was produced with
// these values, so changing them invalidates existing accounts.
const (
	HashIterations = 10000
	HashLength     = 64
	SaltLength     = 16
)

// TOTPSecretLength is the length of a generated 2FA shared secret in
// base32 characters.
const TOTPSecretLength = 26

// ScratchCodeCount is the number of single-use recovery codes issued at
// 2FA enrollment.
const ScratchCodeCount = 6

const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// HashAndSalt computes the salted iterated hash of password under salt:
// PBKDF2-HMAC-SHA512 with the given iteration count and output length.
func HashAndSalt(password string, salt []byte, iterations, length int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, length, sha512.New)
}

// NewSalt returns a fresh random salt of the given length.
func NewSalt(size int) []byte {
	return common.GenerateRandByteArray(size)
}

// DecoySalt derives a deterministic salt for an unknown username so the
// authentication path performs the same hash work whether or not the user
// exists. The derived value never matches a stored salt by construction.
func DecoySalt(username string) []byte {
	sum := sha256.Sum256([]byte("pswmgr-decoy:" + username))
	return sum[:SaltLength]
}

// NewAuthToken generates an opaque unguessable bearer token.
func NewAuthToken() (string, error) {
	return common.MakeRandHexString(32)
}

// NewTOTPSecret generates a random shared secret of length characters
// from the RFC 4648 base32 alphabet, suitable for otpauth provisioning.
func NewTOTPSecret(length int) string {
	raw := common.GenerateRandByteArray(length)
	secret := make([]byte, length)
	for i, b := range raw {
		secret[i] = base32Alphabet[int(b)%len(base32Alphabet)]
	}
	return string(secret)
}

// GenerateScratchCode returns a single-use 8-digit numeric recovery code.
func GenerateScratchCode() (int32, error) {
	// Codes are uniform in [10000000, 99999999] so the leading digit is
	// never zero.
	n, err := rand.Int(rand.Reader, big.NewInt(90000000))
	if err != nil {
		return 0, err
	}
	return int32(n.Int64() + 10000000), nil
}

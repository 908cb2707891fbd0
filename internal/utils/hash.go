package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. saltLength matches the 8-byte salts of the
// legacy credential store so existing hashes stay verifiable.
const (
	pbkdf2Iterations = 600_000
	pbkdf2KeyLength  = 32
	saltLength       = 8
)

// ErrMalformedHash is returned by VerifyPassword when the stored credential
// string does not follow the "pbkdf2$sha256$<iter>$<salt>$<hash>" format.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives a PBKDF2-SHA256 hash from the given plaintext
// password using a freshly generated random salt.
//
// The result is a self-describing string of the form
//
//	pbkdf2$sha256$600000$<hex salt>$<hex hash>
//
// which carries everything VerifyPassword needs to re-derive and compare.
// The plaintext is never stored.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	derived := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	return fmt.Sprintf("pbkdf2$sha256$%d$%s$%s",
		pbkdf2Iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(derived),
	), nil
}

// VerifyPassword reports whether password matches the stored PBKDF2
// credential string produced by HashPassword.
//
// Comparison is constant-time. Returns ErrMalformedHash if the stored
// string cannot be parsed.
func VerifyPassword(password, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 5 || parts[0] != "pbkdf2" || parts[1] != "sha256" {
		return false, ErrMalformedHash
	}

	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return false, ErrMalformedHash
	}

	salt, err := hex.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}

	expected, err := hex.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return hmac.Equal(derived, expected), nil
}

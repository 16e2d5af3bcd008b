package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored credentials are "salt$hex(derived)" where the derived hash is
// PBKDF2-HMAC-SHA256 over the UTF-8 bytes of the password and salt. The
// parameters are fixed: existing stored credentials must keep verifying.
// PBKDF2 is a weaker choice than a memory-hard KDF and is an upgrade
// candidate, which would require re-hashing on login.
const (
	credentialSeparator = "$"
	pbkdf2Iterations    = 100000
	pbkdf2KeyLength     = 32
	saltByteLength      = 16
)

// HashPassword derives a storable credential from a plaintext password
// using a freshly generated random salt.
func HashPassword(password string) (string, error) {
	saltBytes := make([]byte, saltByteLength)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hashPasswordWithSalt(password, hex.EncodeToString(saltBytes)), nil
}

// hashPasswordWithSalt derives the credential encoding for a known salt.
// Same password and salt always yield the same encoding.
func hashPasswordWithSalt(password, salt string) string {
	derived := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return salt + credentialSeparator + hex.EncodeToString(derived)
}

// VerifyPassword checks a candidate password against a stored credential.
// Malformed encodings fail closed: the function returns false rather than
// surfacing an error to the caller.
func VerifyPassword(stored, candidate string) bool {
	salt, _, ok := strings.Cut(stored, credentialSeparator)
	if !ok || salt == "" {
		return false
	}

	recomputed := hashPasswordWithSalt(candidate, salt)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(recomputed)) == 1
}

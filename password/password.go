package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	Time    = 1
	Memory  = 64 * 1024
	Threads = 4
	KeyLen  = 32
)

// Hash hashes a password with a new random salt using Argon2id. Both return
// values are base64 without padding, suitable for environment variables.
func Hash(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}

	hashBytes := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)

	hash = base64.RawStdEncoding.EncodeToString(hashBytes)
	salt = base64.RawStdEncoding.EncodeToString(saltBytes)

	return hash, salt, nil
}

// Verify reports whether password matches the stored hash and salt.
func Verify(password, hash, salt string) bool {
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	hashBytes, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)
	return subtle.ConstantTimeCompare(computed, hashBytes) == 1
}

// Package lockbox implements the password gate for locked links: a URL is
// sealed with a password-derived key and only the ciphertext ships in the
// exported page. The inline script in the exported page re-derives the
// same key with WebCrypto, so the wire format here must match that
// routine byte for byte: base64(salt[16] || nonce[12] || ciphertext+tag),
// PBKDF2-SHA256 with 100000 iterations.
//
// This is obfuscation, not access control — salt, iterations and
// ciphertext all ship in the public artifact.
package lockbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	iterations = 100_000
)

// ErrWrongPassword is returned when decryption fails authentication.
// The same error covers truncated or corrupted tokens so callers cannot
// distinguish a bad password from a tampered token.
var ErrWrongPassword = errors.New("lockbox: wrong password or corrupted token")

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
}

// EncryptURL seals a URL with a password. Each call uses a fresh random
// salt and nonce, so encrypting the same inputs twice yields different
// tokens.
func EncryptURL(url, password string) (string, error) {
	if url == "" {
		return "", errors.New("lockbox: url cannot be empty")
	}
	if password == "" {
		return "", errors.New("lockbox: password cannot be empty")
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(url), nil)

	out := make([]byte, 0, saltSize+nonceSize+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptURL opens a token produced by EncryptURL. A wrong password fails
// the GCM authentication check and returns ErrWrongPassword — never
// garbage plaintext.
func DecryptURL(token, password string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrWrongPassword
	}
	if len(raw) < saltSize+nonceSize {
		return "", ErrWrongPassword
	}

	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+nonceSize]
	sealed := raw[saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrWrongPassword
	}
	return string(plain), nil
}

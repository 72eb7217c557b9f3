package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// ErrCiphertextTooShort is returned when the sealed blob cannot even hold a nonce.
var ErrCiphertextTooShort = errors.New("cryptox: ciphertext too short")

// Sealer encrypts small secrets (refresh tokens) at rest using AES-256-GCM.
// The output format is: [12-byte nonce][encrypted data][16-byte auth tag]
type Sealer struct {
	aead cipher.AEAD
}

// LoadMasterKey reads key material from:
//  1. the file at path (if set)
//  2. the environment variable envVar
//  3. a random ephemeral key, so sealed values do not survive a restart
//
// The bool result reports whether the key is ephemeral.
func LoadMasterKey(path, envVar string) ([]byte, bool, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read master key file: %w", err)
		}
		return []byte(strings.TrimSpace(string(data))), false, nil
	}

	if v := os.Getenv(envVar); v != "" {
		return []byte(v), false, nil
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, false, fmt.Errorf("failed to generate ephemeral master key: %w", err)
	}
	return key, true, nil
}

// LoadOrCreateKeyFile returns the key stored at path. When the file does not
// exist yet a random 32-byte key is written to it with mode 0600 first. The
// bool result reports whether the file was created by this call.
func LoadOrCreateKeyFile(path string) ([]byte, bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	switch {
	case errors.Is(err, fs.ErrExist):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read master key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return nil, false, fmt.Errorf("master key file %s is empty", path)
		}
		return []byte(key), false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to create master key file: %w", err)
	}
	defer f.Close()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, false, fmt.Errorf("failed to generate master key: %w", err)
	}
	key := base64.StdEncoding.EncodeToString(raw)
	if _, err := f.WriteString(key + "\n"); err != nil {
		_ = os.Remove(path)
		return nil, false, fmt.Errorf("failed to write master key file: %w", err)
	}
	return []byte(key), true, nil
}

// NewSealer derives a 32-byte AES key from master with HKDF-SHA256. The info
// string binds the key to one purpose, so the same master never encrypts two
// kinds of data under the same key.
func NewSealer(master []byte, info string) (*Sealer, error) {
	if len(master) == 0 {
		return nil, errors.New("cryptox: empty master key")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Sealer{aead: gcm}, nil
}

// Seal encrypts and authenticates plaintext with a fresh random nonce.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the ciphertext and tag to nonce
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

// SealString is Seal for text stores; the result is base64 encoded.
func (s *Sealer) SealString(plaintext string) (string, error) {
	sealed, err := s.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenString reverses SealString.
func (s *Sealer) OpenString(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode sealed value: %w", err)
	}
	plaintext, err := s.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

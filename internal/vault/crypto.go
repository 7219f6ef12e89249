package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/password-vault/internal/logger"
)

// fieldKeySalt is a fixed application-level salt for deriving the AES key
// from the configured secret string. The whole vault shares one key, so the
// salt only needs to domain-separate this derivation from other uses of the
// same secret.
const fieldKeySalt = "password-vault/field-cipher/v1"

const fieldKeyIterations = 4096

// DecryptResult is the internal outcome of a single field decryption.
// The public contract degrades failures to an empty string, but the typed
// seam lets the cipher log and (later) count failures without changing that
// behaviour.
type DecryptResult struct {
	OK    bool
	Value string
}

// FieldCipher encrypts and decrypts individual text fields with AES-256-GCM.
// The key is derived from the configured secret string via PBKDF2-SHA256 and
// cached, so per-field calls stay cheap.
//
// Decryption is fail-soft: wrong key, corrupted payload, or a malformed
// blob degrade to an empty string rather than an error. A garbled field
// renders blank instead of crashing the vault view.
type FieldCipher struct {
	logger *logger.Logger

	mu   sync.Mutex
	keys map[string][]byte
}

// NewFieldCipher constructs a FieldCipher that reports decryption failures
// to the given logger.
func NewFieldCipher(log *logger.Logger) *FieldCipher {
	return &FieldCipher{logger: log, keys: make(map[string][]byte)}
}

// EncryptField encrypts a single plaintext field under the given secret.
// Empty plaintext maps to empty ciphertext so that legitimately empty
// optional fields stay empty on the wire.
func (c *FieldCipher) EncryptField(plaintext, secret string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	gcm, err := c.aead(secret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ct...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptField decrypts a single ciphertext field under the given secret.
// Empty ciphertext maps to empty plaintext. Any decode failure is logged and
// degrades to an empty string; it is never raised to the caller.
func (c *FieldCipher) DecryptField(ciphertext, secret string) string {
	res := c.decryptField(ciphertext, secret)
	return res.Value
}

func (c *FieldCipher) decryptField(ciphertext, secret string) DecryptResult {
	if ciphertext == "" {
		return DecryptResult{OK: true, Value: ""}
	}

	plaintext, err := c.open(ciphertext, secret)
	if err != nil {
		c.logger.Warn().Err(err).Msg("field decryption failed, degrading to empty value")
		return DecryptResult{OK: false, Value: ""}
	}

	return DecryptResult{OK: true, Value: plaintext}
}

func (c *FieldCipher) open(ciphertext, secret string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	gcm, err := c.aead(secret)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ct := blob[:nonceSize], blob[nonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("open ciphertext: %w", err)
	}

	return string(pt), nil
}

func (c *FieldCipher) aead(secret string) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.deriveKey(secret))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// deriveKey stretches the secret string into a 32-byte AES key. Derivations
// are cached per secret; a session uses a single constant secret, so the
// cache stays tiny.
func (c *FieldCipher) deriveKey(secret string) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key, ok := c.keys[secret]; ok {
		return key
	}

	key := pbkdf2.Key([]byte(secret), []byte(fieldKeySalt), fieldKeyIterations, 32, sha256.New)
	c.keys[secret] = key
	return key
}

package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
)

const (
	saltLen = 16
	keyLen  = 32
)

// Hasher hashes and verifies passwords with Argon2id. Cost parameters are
// injected once at startup; hashing stays deliberately expensive so a
// stored-hash comparison is never a fast path for brute forcing.
type Hasher struct {
	timeCost    uint32
	memoryKiB   uint32
	parallelism uint8
}

// NewHasher builds a Hasher from the hash configuration.
func NewHasher(cfg *config.HashConfig) *Hasher {
	return &Hasher{
		timeCost:    cfg.TimeCost,
		memoryKiB:   cfg.MemoryKiB,
		parallelism: cfg.Parallelism,
	}
}

// Hash derives an encoded Argon2id hash with a fresh random salt.
// Format: $argon2id$v=19$m=<mem>,t=<time>,p=<par>$<b64 salt>$<b64 key>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.timeCost, h.memoryKiB, h.parallelism, keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memoryKiB, h.timeCost, h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify reports whether password matches the encoded hash. It returns
// false for any mismatch, including a malformed or truncated stored hash,
// so callers have a single boolean branch. The comparison is constant time
// and the plaintext is never logged.
func (h *Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memoryKiB, timeCost uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memoryKiB, &timeCost, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	// Derive with the parameters recorded in the hash, not the current
	// configuration, so old hashes keep verifying after a cost change.
	got := argon2.IDKey([]byte(password), salt, timeCost, memoryKiB, parallelism, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}

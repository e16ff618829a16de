package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies player passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

type bcryptHasher struct {
	cost int
}

// NewHasher creates the bcrypt-backed hasher used for all new registrations.
func NewHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted bcrypt hash from the password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify checks a password against a stored hash. Rows written before the
// bcrypt migration hold unsalted SHA-256 hex digests; those still verify so
// existing players keep logging in.
func (h *bcryptHasher) Verify(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}
	if isLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(stored)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// LegacyHash returns the pre-migration SHA-256 hex digest. Kept for seeding
// fixture rows that exercise the compatibility path.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isLegacyDigest(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}

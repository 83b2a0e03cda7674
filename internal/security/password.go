package security

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores everything past 72 bytes and recent versions reject longer
// input outright. Truncation must happen identically on the hash and verify
// paths or long passwords stop authenticating.
const maxPasswordBytes = 72

// Hasher hashes and verifies passwords with bcrypt. Cost is fixed at
// construction; the zero value is not usable, call NewHasher.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Out-of-range
// costs fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted one-way hash of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash. A malformed hash yields
// false, never an error: login with a corrupt stored hash must fail
// closed, not crash the caller.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the original deployment used.
const bcryptCost = 10

// HashPassword returns a salted one-way hash of password. bcrypt generates
// and embeds a fresh per-user salt, so the same password never hashes to
// the same value twice.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

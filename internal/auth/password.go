package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword applies a salted bcrypt hash to the plaintext password.
// The plaintext is never persisted or logged anywhere in this codebase.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// bcrypt recomputes the full hash, so the comparison cost does not depend
// on where a mismatching byte sits.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package helpers

import "golang.org/x/crypto/bcrypt"

// HashSenha hashes the plain text password using bcrypt. The salt is random,
// so hashing the same input twice yields different outputs.
func HashSenha(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckSenha compares a bcrypt hash with a plain password. A malformed
// stored hash simply fails the check.
func CheckSenha(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from a plaintext password. The plaintext is
// never logged or stored.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Any verification
// failure reads as a mismatch.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

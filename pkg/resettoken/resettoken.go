package resettoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Generate produces a random reset secret and the sha256 hash to persist. Only
// the hash is ever stored; the raw secret goes to the account holder.
func Generate() (secret, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	secret = hex.EncodeToString(buf)
	return secret, HashSecret(secret), nil
}

// HashSecret returns the hex sha256 digest of a presented secret.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

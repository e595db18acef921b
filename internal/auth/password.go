package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for operator passwords.
const passwordCost = bcrypt.DefaultCost

// HashPassword hashes an operator password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a plain password against its stored bcrypt hash.
func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor used for all stored credentials.
const hashCost = 10

// HashPassword hashes a password using bcrypt. The returned hash embeds
// its own salt and cost, so verification needs nothing else.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches the given bcrypt hash.
// A mismatch is not an error, it just returns false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

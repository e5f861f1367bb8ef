package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a bcrypt digest of an unguessable throwaway value. Sign-in
// compares against it when no account matches, so a missing user costs the
// same as a wrong password.
const dummyHash = "$2a$12$b0GEJMQPnAVwFIiBXRpoZuM5VVuhZEICuJsa9PZ9bIrmCbd4xbVX6"

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CompareDummy burns a bcrypt verification against a fixed hash and always
// fails. Callers use it to keep the credential check constant-time when the
// looked-up account does not exist.
func CompareDummy(plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain)); err != nil {
		return err
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

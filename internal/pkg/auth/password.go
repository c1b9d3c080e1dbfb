package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Encrypter hashes and verifies passwords. A server-side pepper is appended
// to the plaintext before hashing, so hashes are only verifiable by a process
// configured with the same pepper.
type Encrypter struct {
	pepper string
}

// NewEncrypter creates an Encrypter with the given pepper.
func NewEncrypter(pepper string) *Encrypter {
	return &Encrypter{pepper: pepper}
}

// Hash returns the bcrypt hash of password+pepper.
func (e *Encrypter) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+e.pepper), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Check reports whether password matches hashedPassword.
func (e *Encrypter) Check(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password+e.pepper))
	return err == nil
}

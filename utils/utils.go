package utils

import (
	"math/rand"
	"time"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword generates a random alphanumeric password of length n
func GeneratePassword(n int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	password := make([]byte, n)
	for i := range password {
		password[i] = passwordCharset[rng.Intn(len(passwordCharset))]
	}
	return string(password)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePasswordLength(t *testing.T) {
	assert.Len(t, GeneratePassword(8), 8)
	assert.Len(t, GeneratePassword(10), 10)
	assert.Empty(t, GeneratePassword(0))
}

func TestGeneratePasswordCharset(t *testing.T) {
	password := GeneratePassword(64)
	for _, ch := range password {
		assert.Contains(t, passwordCharset, string(ch))
	}
}

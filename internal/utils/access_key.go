package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/sena-h/group-companion/internal/constants"
)

const accessKeyCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessKey returns a random key in the format XXXX-XXXX-XXXX-XXXX.
// Uniqueness is probabilistic; the unique index on the key column is the
// backstop.
func GenerateAccessKey() (string, error) {
	buf := make([]byte, constants.AccessKeyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = accessKeyCharset[int(b)%len(accessKeyCharset)]
	}

	blocks := make([]string, 0, constants.AccessKeyLength/constants.AccessKeyBlockSize)
	for i := 0; i < len(buf); i += constants.AccessKeyBlockSize {
		blocks = append(blocks, string(buf[i:i+constants.AccessKeyBlockSize]))
	}

	return strings.Join(blocks, "-"), nil
}

package random

import (
	"crypto/rand"
	"fmt"
)

// passwordChars is the allowed password alphabet. Symbols that need
// quoting in a shell (quotes, backslash, backtick, $, etc.) are left
// out so generated values survive being passed to sibling scripts.
const passwordChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#%^&*()_+=-"

// Password generates a random password of exactly length characters,
// each drawn from the allowed alphabet.
func Password(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be at least 1, got %d", length)
	}

	result := make([]byte, 0, length)
	buf := make([]byte, 64)
	for len(result) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			// Reject bytes outside the alphabet instead of taking a
			// modulo, so the distribution stays uniform.
			if int(b) < len(passwordChars)*(256/len(passwordChars)) {
				result = append(result, passwordChars[int(b)%len(passwordChars)])
				if len(result) == length {
					break
				}
			}
		}
	}
	return string(result), nil
}

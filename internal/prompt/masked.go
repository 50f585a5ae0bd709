package prompt

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readMasked puts the terminal into raw mode and reads a password
// with the echo replaced by mask characters. in must be the
// collector's own reader so bytes it already buffered from earlier
// prompts are not lost.
func readMasked(in io.ByteReader, out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	return maskInput(in, out)
}

// maskInput consumes bytes until a line terminator. Backspace
// removes the last character and erases one mask from the display.
func maskInput(in io.ByteReader, out io.Writer) (string, error) {
	var password []byte
	for {
		b, err := in.ReadByte()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		switch {
		case b == '\r' || b == '\n':
			return string(password), nil
		case b == 0x03: // ctrl+c
			return "", fmt.Errorf("interrupted")
		case b == 0x7f || b == 0x08: // backspace
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Fprint(out, "\b \b")
			}
		case b >= 0x20 && b < 0x7f:
			password = append(password, b)
			fmt.Fprint(out, "*")
		}
	}
}

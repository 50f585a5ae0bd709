// Package prompt implements the interactive input collectors used
// during bootstrap: required values, email addresses, and masked
// passwords. Each collector loops until a valid value is read and
// returns it; I/O failures are returned as errors.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/vantagepanel/bootstrap/internal/theme"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Collector reads interactive input. In and Out are injectable for
// tests; ReadPassword defaults to a raw-mode masked terminal read.
type Collector struct {
	In           *bufio.Reader
	Out          io.Writer
	ReadPassword func() (string, error)
}

// New returns a Collector bound to stdin/stdout.
func New() *Collector {
	return &Collector{
		In:  bufio.NewReader(os.Stdin),
		Out: os.Stdout,
	}
}

func (c *Collector) readLine() (string, error) {
	line, err := c.In.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Collector) errLine(msg string) {
	fmt.Fprintf(c.Out, "  %s %s\n", theme.Error.Render("ERROR:"), msg)
}

// Required prompts until a non-empty value is entered. An empty
// input with a non-empty def accepts the default immediately.
func (c *Collector) Required(label, def string) (string, error) {
	for {
		c.printPrompt(label, def)
		value, err := c.readLine()
		if err != nil {
			return "", err
		}
		if value == "" {
			if def != "" {
				return def, nil
			}
			c.errLine(label + " cannot be empty")
			continue
		}
		return value, nil
	}
}

// Email prompts until the input matches the email pattern. An empty
// input fails the pattern too, so there is no default path.
func (c *Collector) Email(label string) (string, error) {
	for {
		c.printPrompt(label, "")
		value, err := c.readLine()
		if err != nil {
			return "", err
		}
		if !ValidEmail(value) {
			c.errLine("invalid email address")
			continue
		}
		return value, nil
	}
}

// Password prompts and reads a masked password. An empty entry with
// a non-empty def accepts the default; an empty entry without one
// restarts the whole read, prompt included.
func (c *Collector) Password(label, def string) (string, error) {
	read := c.ReadPassword
	if read == nil {
		read = func() (string, error) { return readMasked(c.In, c.Out) }
	}
	for {
		// Never render the default here; it may be a generated secret.
		fmt.Fprintf(c.Out, "  %s: ", label)
		value, err := read()
		if err != nil {
			return "", err
		}
		fmt.Fprintln(c.Out)
		if value == "" {
			if def != "" {
				return def, nil
			}
			c.errLine(label + " cannot be empty")
			continue
		}
		return value, nil
	}
}

func (c *Collector) printPrompt(label, def string) {
	if def != "" {
		fmt.Fprintf(c.Out, "  %s %s: ", label,
			theme.Dim.Render("["+def+"]"))
		return
	}
	fmt.Fprintf(c.Out, "  %s: ", label)
}

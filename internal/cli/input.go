package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompt prints label and reads one trimmed line. A final line without a
// newline is accepted.
func (c *CLI) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(c.Err, label); err != nil {
		return "", err
	}
	line, err := c.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// password reads a password without echo.
func (c *CLI) password() (string, error) {
	fmt.Fprint(c.Err, "Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(c.Err)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// confirmer asks on the terminal unless the operator passed --yes.
func (c *CLI) confirmer(yes bool) resource.Confirmer {
	if yes {
		return resource.Confirmed
	}
	return resource.ConfirmFunc(func(_ context.Context, question string) (bool, error) {
		answer, err := c.prompt(question + " [y/N] ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "o", "oui":
			return true, nil
		default:
			return false, nil
		}
	})
}

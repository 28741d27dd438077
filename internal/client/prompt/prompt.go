// Package prompt provides the interactive input helpers used by the
// client shell.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"formvault/internal/models"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// ReadLine prints a prompt to w and reads a single line of input from
// reader, with the trailing newline trimmed. If EOF occurs after some
// input was read, the partial line is returned.
func ReadLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prints a password prompt to w and reads a password from
// the user's terminal without echo. A newline is printed after the read
// to keep the UI tidy.
func ReadPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// ForSubmission walks the user through the contact form fields and
// returns the completed record. Field presence is advisory only; empty
// answers are accepted as typed.
func ForSubmission(reader *bufio.Reader, w io.Writer) (models.Submission, error) {
	var rec models.Submission
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name: ", &rec.Name},
		{"Email: ", &rec.Email},
		{"Phone: ", &rec.Phone},
		{"Address: ", &rec.Address},
		{"Message: ", &rec.Message},
	}
	for _, f := range fields {
		v, err := ReadLine(reader, f.label, w)
		if err != nil {
			return models.Submission{}, err
		}
		*f.dst = v
	}
	return rec, nil
}

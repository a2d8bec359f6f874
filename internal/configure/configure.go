// Package configure implements the interactive setup flow behind the
// "configure" pseudo-method. It prompts for the endpoint URL and the private
// token and persists them to the YAML config file in the user's home
// directory.
package configure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gitlab-cli/internal/config"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Wizard runs the interactive prompts and writes the config file.
type Wizard struct {
	In  io.Reader
	Out io.Writer

	// ReadSecret reads the token without echo. Left nil, it uses
	// term.ReadPassword when stdin is a terminal and a plain line read
	// otherwise (pipes, tests).
	ReadSecret func() (string, error)
}

// NewWizard returns a wizard wired to the process's stdin/stderr.
func NewWizard() *Wizard {
	return &Wizard{In: os.Stdin, Out: os.Stderr}
}

// Run prompts for endpoint and token and writes them to path with mode 0600.
func (w *Wizard) Run(path string) error {
	reader := bufio.NewReader(w.In)

	fmt.Fprint(w.Out, "GitLab endpoint URL (e.g. https://gitlab.example.com): ")
	endpoint, err := readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read endpoint: %w", err)
	}
	if endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}

	fmt.Fprint(w.Out, "Private token: ")
	token, err := w.readToken(reader)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	fmt.Fprintln(w.Out)
	if token == "" {
		return fmt.Errorf("private token must not be empty")
	}

	cfg := config.Config{
		Endpoint:     endpoint,
		PrivateToken: token,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration to '%s': %w", path, err)
	}

	fmt.Fprintf(w.Out, "Configuration written to %s\n", path)
	return nil
}

func (w *Wizard) readToken(reader *bufio.Reader) (string, error) {
	if w.ReadSecret != nil {
		return w.ReadSecret()
	}
	if f, ok := w.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

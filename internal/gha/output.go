package gha

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// outputFileEnv names the file the CI runner collects step outputs from.
const outputFileEnv = "GITHUB_OUTPUT"

// errNoOutputFile is returned when the runner did not provide an output file.
var errNoOutputFile = errors.New("GITHUB_OUTPUT is not set")

// SetOutput appends a named, possibly multi-line output value using the
// heredoc form of the output-file protocol. The delimiter must not occur in
// the value, so a fresh UUID-based one is used per write.
func SetOutput(name, value string) error {
	path := os.Getenv(outputFileEnv)
	if path == "" {
		return errNoOutputFile
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	delimiter := "ghadelim_" + uuid.NewString()

	if _, err = fmt.Fprintf(file, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		_ = file.Close()

		return fmt.Errorf("write output: %w", err)
	}

	return file.Close()
}

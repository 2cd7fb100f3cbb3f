package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// invokeAgent runs the agent command with the parent environment plus the
// API credential, teeing stdout to the step log while capturing it for the
// step output. The call blocks until the agent exits.
func invokeAgent(ctx context.Context, command string, args []string, token string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = append(os.Environ(), tokenEnvVar+"="+token)

	var captured bytes.Buffer

	cmd.Stdout = io.MultiWriter(os.Stdout, &captured)
	cmd.Stderr = os.Stderr

	err := cmd.Run()

	return captured.String(), err
}

package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/oshokin/warp-agent-action/internal/domain/release"
	"github.com/oshokin/warp-agent-action/internal/logger"
)

// readDiagnostics returns the channel's diagnostic log contents.
func readDiagnostics(stateDir string, channel release.Channel) (string, error) {
	path := release.LogPath(stateDir, channel)

	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read diagnostic log %s: %w", path, err)
	}

	return string(contents), nil
}

// surfaceDiagnostics prints the agent's diagnostic log after a failed run.
// A missing or unreadable log must not mask the original failure, so read
// errors degrade to a warning.
func surfaceDiagnostics(ctx context.Context, stateDir string, channel release.Channel) {
	contents, err := readDiagnostics(stateDir, channel)
	if err != nil {
		logger.WarnKV(ctx, "Unable to read agent diagnostic log", "error", err)
		return
	}

	logger.Infof(ctx, "Agent diagnostic log (%s):\n%s",
		release.LogPath(stateDir, channel), contents)
}

package runner

import (
	"context"
	"os"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/warp-agent-action/internal/logger"
)

// warnIfAgentRunning scans the process list for an agent instance that is
// already running on this machine. Purely advisory: scan failures and hits
// both log and never fail the run.
func warnIfAgentRunning(ctx context.Context, command string) {
	processList, err := ps.Processes()
	if err != nil {
		logger.DebugKV(ctx, "Unable to scan process list", "error", err)
		return
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == command {
			logger.WarnKV(ctx, "Another agent process is already running",
				"command", command, "pid", process.Pid())

			return
		}
	}
}

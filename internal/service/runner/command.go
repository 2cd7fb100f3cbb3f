package runner

import (
	"context"
	"fmt"

	"github.com/oshokin/warp-agent-action/internal/config"
	"github.com/oshokin/warp-agent-action/internal/domain/release"
	"github.com/oshokin/warp-agent-action/internal/gha"
	"github.com/oshokin/warp-agent-action/internal/invocation"
	"github.com/oshokin/warp-agent-action/internal/logger"
	"github.com/oshokin/warp-agent-action/internal/repository/toolcache"
	"github.com/oshokin/warp-agent-action/internal/service/installer"
	"github.com/oshokin/warp-agent-action/internal/service/locator"
)

// Options are inputs accepted by the runner entry point.
type Options struct {
	// ConfigPath is an optional path to a YAML inputs file for local runs;
	// in CI the inputs come from the environment.
	ConfigPath string
}

const (
	// tokenEnvVar carries the API credential into the agent process.
	tokenEnvVar = "WARP_API_TOKEN"

	// outputName is the step output holding the agent's captured stdout.
	outputName = "agent_output"
)

// Run executes one pipeline-step run and is the public entry point for the CLI.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "warp-agent-action")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	channel, err := release.ParseChannel(cfg.Channel)
	if err != nil {
		return err
	}

	command, err := channel.Command()
	if err != nil {
		return err
	}

	// Self-hosted runners reuse machines; a leftover agent process is worth a warning.
	warnIfAgentRunning(ctx, command)

	logger.InfoKV(ctx, "Locating agent package", "channel", channel, "version", cfg.Version)

	cache := toolcache.New(toolcache.DefaultRoot())

	packagePath, err := locator.New(cache).Locate(ctx, channel, cfg.Version)
	if err != nil {
		return fmt.Errorf("locate package: %w", err)
	}

	if err = installer.Install(ctx, packagePath); err != nil {
		return err
	}

	args := invocation.Args(cfg.Invocation())
	logger.InfoKV(ctx, "Invoking agent", "command", command, "args", args)

	output, err := invokeAgent(ctx, command, args, cfg.APIToken)
	if err != nil {
		surfaceDiagnostics(ctx, release.DefaultStateDir(), channel)

		return fmt.Errorf("agent run: %w", err)
	}

	if err = gha.SetOutput(outputName, output); err != nil {
		return fmt.Errorf("publish output: %w", err)
	}

	logger.Info(ctx, "Agent run completed")

	return nil
}

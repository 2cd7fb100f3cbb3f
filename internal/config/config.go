package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/oshokin/warp-agent-action/internal/invocation"
)

// Config holds every input the pipeline step accepts.
type Config struct {
	// Channel is the release track of the agent tool.
	Channel string
	// Version pins the tool version, or "latest".
	Version string
	// APIToken authenticates the agent against the vendor's API.
	APIToken string
	// Prompt is the free-form task for the agent.
	Prompt string
	// SavedPromptID references a server-side prompt.
	SavedPromptID string
	// Skill references a predefined skill.
	Skill string
	// Model overrides the default model.
	Model string
	// AgentName labels the run.
	AgentName string
	// MCPConfig is a JSON-encoded MCP server configuration.
	MCPConfig string
	// WorkingDirectory is forwarded to the agent.
	WorkingDirectory string
	// Profile selects a permission profile; empty means sandboxed.
	Profile string
	// OutputFormat selects the agent's output rendering.
	OutputFormat string
	// ShareRecipients is the parsed one-per-line recipients input.
	ShareRecipients []string
	// Debug enables the agent's debug output.
	Debug bool
}

const (
	// envPrefix is the CI platform's prefix for step inputs.
	envPrefix = "INPUT"

	// DefaultChannel is used when the channel input is absent.
	DefaultChannel = "stable"

	// DefaultVersion is used when the version input is absent.
	DefaultVersion = "latest"
)

var (
	// errTaskRequired is returned when no prompt, saved prompt, or skill is given.
	errTaskRequired = errors.New("one of prompt, saved_prompt, or skill must be provided")
	// errTokenRequired is returned when the API credential is absent.
	errTokenRequired = errors.New("api_token must be provided")
)

// Load reads inputs from the environment, optionally overlaid by a YAML file
// for local runs, and validates them.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("channel", DefaultChannel)
	v.SetDefault("version", DefaultVersion)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read inputs file: %w", err)
		}
	}

	cfg := &Config{
		Channel:          v.GetString("channel"),
		Version:          v.GetString("version"),
		APIToken:         v.GetString("api_token"),
		Prompt:           v.GetString("prompt"),
		SavedPromptID:    v.GetString("saved_prompt"),
		Skill:            v.GetString("skill"),
		Model:            v.GetString("model"),
		AgentName:        v.GetString("agent_name"),
		MCPConfig:        v.GetString("mcp_config"),
		WorkingDirectory: v.GetString("working_directory"),
		Profile:          v.GetString("profile"),
		OutputFormat:     v.GetString("output_format"),
		ShareRecipients:  splitLines(v.GetString("share_recipients")),
		Debug:            v.GetBool("debug"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fails fast on missing required inputs, before any network or
// process activity happens.
func Validate(cfg *Config) error {
	if cfg.Prompt == "" && cfg.SavedPromptID == "" && cfg.Skill == "" {
		return errTaskRequired
	}

	if cfg.APIToken == "" {
		return errTokenRequired
	}

	return nil
}

// Invocation maps the inputs onto the agent invocation options.
func (c *Config) Invocation() invocation.Options {
	return invocation.Options{
		Prompt:           c.Prompt,
		SavedPromptID:    c.SavedPromptID,
		Skill:            c.Skill,
		Model:            c.Model,
		AgentName:        c.AgentName,
		MCPConfig:        c.MCPConfig,
		WorkingDirectory: c.WorkingDirectory,
		Profile:          c.Profile,
		OutputFormat:     c.OutputFormat,
		ShareRecipients:  c.ShareRecipients,
		Debug:            c.Debug,
	}
}

// splitLines parses a one-recipient-per-line input, dropping blank lines.
func splitLines(value string) []string {
	if value == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")

	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}

	return result
}

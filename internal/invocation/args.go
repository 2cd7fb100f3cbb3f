package invocation

// Options describes a single agent run. All string fields are optional and
// treated as absent when empty; none of them are validated here.
type Options struct {
	// Prompt is the free-form task given to the agent.
	Prompt string
	// SavedPromptID references a prompt stored on the server.
	SavedPromptID string
	// Skill references a predefined skill to run.
	Skill string
	// Model overrides the default model.
	Model string
	// AgentName labels the run.
	AgentName string
	// MCPConfig is a JSON-encoded MCP server configuration.
	MCPConfig string
	// WorkingDirectory is passed through to the agent, not applied to the process.
	WorkingDirectory string
	// Profile selects a permission profile; when empty the run is sandboxed.
	Profile string
	// OutputFormat selects the agent's output rendering.
	OutputFormat string
	// ShareRecipients receive the run, one --share flag each, in input order.
	ShareRecipients []string
	// Debug enables the agent's debug output.
	Debug bool
}

// Args produces the ordered argument list for the agent command.
// Each optional field contributes its flag/value pair only when set.
func Args(o Options) []string {
	args := []string{"agent", "run"}

	if o.Prompt != "" {
		args = append(args, "--prompt", o.Prompt)
	}

	if o.SavedPromptID != "" {
		args = append(args, "--saved-prompt", o.SavedPromptID)
	}

	if o.Skill != "" {
		args = append(args, "--skill", o.Skill)
	}

	if o.Model != "" {
		args = append(args, "--model", o.Model)
	}

	if o.AgentName != "" {
		args = append(args, "--name", o.AgentName)
	}

	if o.MCPConfig != "" {
		args = append(args, "--mcp", o.MCPConfig)
	}

	if o.WorkingDirectory != "" {
		args = append(args, "--cwd", o.WorkingDirectory)
	}

	// Exactly one of the two fires: a named profile or the sandbox.
	if o.Profile != "" {
		args = append(args, "--profile", o.Profile)
	} else {
		args = append(args, "--sandboxed")
	}

	if o.OutputFormat != "" {
		args = append(args, "--output-format", o.OutputFormat)
	}

	for _, recipient := range o.ShareRecipients {
		args = append(args, "--share", recipient)
	}

	if o.Debug {
		args = append(args, "--debug")
	}

	return args
}

package invocation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestArgsEmptyOptions checks the minimal invocation: only the fixed prefix
// and the sandbox flag.
func TestArgsEmptyOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"agent", "run", "--sandboxed"}, Args(Options{}))
}

// TestArgsAlwaysStartWithAgentRun verifies the fixed prefix for assorted inputs.
func TestArgsAlwaysStartWithAgentRun(t *testing.T) {
	t.Parallel()

	cases := []Options{
		{},
		{Prompt: "do it"},
		{Profile: "trusted", Debug: true},
		{ShareRecipients: []string{"a@x.com"}},
	}
	for _, o := range cases {
		args := Args(o)
		require.GreaterOrEqual(t, len(args), 2)
		require.Equal(t, []string{"agent", "run"}, args[:2])
	}
}

// TestArgsProfileSandboxExclusive ensures exactly one of --profile/--sandboxed
// appears, never both, never neither.
func TestArgsProfileSandboxExclusive(t *testing.T) {
	t.Parallel()

	withProfile := Args(Options{Profile: "trusted"})
	require.Contains(t, withProfile, "--profile")
	require.Contains(t, withProfile, "trusted")
	require.NotContains(t, withProfile, "--sandboxed")

	withoutProfile := Args(Options{Prompt: "x"})
	require.Contains(t, withoutProfile, "--sandboxed")
	require.NotContains(t, withoutProfile, "--profile")
}

// TestArgsShareRecipientsOrdered checks repeated --share flags preserve input order.
func TestArgsShareRecipientsOrdered(t *testing.T) {
	t.Parallel()

	args := Args(Options{ShareRecipients: []string{"a@x.com", "b@y.com"}})

	first := indexOf(t, args, "a@x.com")
	second := indexOf(t, args, "b@y.com")
	require.Equal(t, "--share", args[first-1])
	require.Equal(t, "--share", args[second-1])
	require.Less(t, first, second)
}

// TestArgsDebugFlag checks the boolean flag has no value token and is absent when false.
func TestArgsDebugFlag(t *testing.T) {
	t.Parallel()

	require.NotContains(t, Args(Options{Prompt: "x"}), "--debug")

	args := Args(Options{Prompt: "x", Debug: true})
	require.Equal(t, "--debug", args[len(args)-1])
}

// TestArgsCombined verifies a fully-populated invocation keeps every pair in
// the documented order.
func TestArgsCombined(t *testing.T) {
	t.Parallel()

	args := Args(Options{
		Prompt:           "review the diff",
		SavedPromptID:    "sp-1",
		Skill:            "code-review",
		Model:            "gpt-5",
		AgentName:        "reviewer",
		MCPConfig:        `{"servers":{}}`,
		WorkingDirectory: "/repo",
		Profile:          "trusted",
		OutputFormat:     "json",
		ShareRecipients:  []string{"a@x.com"},
		Debug:            true,
	})

	require.Equal(t, []string{
		"agent", "run",
		"--prompt", "review the diff",
		"--saved-prompt", "sp-1",
		"--skill", "code-review",
		"--model", "gpt-5",
		"--name", "reviewer",
		"--mcp", `{"servers":{}}`,
		"--cwd", "/repo",
		"--profile", "trusted",
		"--output-format", "json",
		"--share", "a@x.com",
		"--debug",
	}, args)
	require.NotContains(t, args, "--sandboxed")
}

// indexOf returns the index of the first occurrence of value, failing the test when absent.
func indexOf(t *testing.T, args []string, value string) int {
	t.Helper()

	for i, a := range args {
		if a == value {
			return i
		}
	}

	require.Failf(t, "token not found", "%q not in %v", value, args)

	return -1
}

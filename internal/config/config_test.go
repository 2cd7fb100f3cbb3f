package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadFromEnvironment reads the CI platform's INPUT_* variables.
func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INPUT_CHANNEL", "preview")
	t.Setenv("INPUT_VERSION", "v1.2.3")
	t.Setenv("INPUT_API_TOKEN", "secret")
	t.Setenv("INPUT_PROMPT", "summarize the failures")
	t.Setenv("INPUT_SHARE_RECIPIENTS", "a@x.com\nb@y.com\n")
	t.Setenv("INPUT_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "preview", cfg.Channel)
	require.Equal(t, "v1.2.3", cfg.Version)
	require.Equal(t, "secret", cfg.APIToken)
	require.Equal(t, "summarize the failures", cfg.Prompt)
	require.Equal(t, []string{"a@x.com", "b@y.com"}, cfg.ShareRecipients)
	require.True(t, cfg.Debug)
}

// TestLoadDefaults applies the stable channel and latest version when unset.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("INPUT_API_TOKEN", "secret")
	t.Setenv("INPUT_SKILL", "code-review")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultChannel, cfg.Channel)
	require.Equal(t, DefaultVersion, cfg.Version)
}

// TestLoadFromFile overlays a YAML inputs file for local runs.
func TestLoadFromFile(t *testing.T) {
	t.Setenv("INPUT_API_TOKEN", "")

	path := filepath.Join(t.TempDir(), "inputs.yaml")
	contents := "api_token: from-file\nprompt: hello\nprofile: trusted\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.APIToken)
	require.Equal(t, "hello", cfg.Prompt)
	require.Equal(t, "trusted", cfg.Profile)
}

// TestValidate covers the two fail-fast conditions.
func TestValidate(t *testing.T) {
	t.Parallel()

	// No task at all.
	err := Validate(&Config{APIToken: "secret"})
	require.ErrorIs(t, err, errTaskRequired)

	// Task present, credential absent.
	err = Validate(&Config{Prompt: "x"})
	require.ErrorIs(t, err, errTokenRequired)

	// Any one of the three task inputs is enough.
	for _, cfg := range []*Config{
		{APIToken: "secret", Prompt: "x"},
		{APIToken: "secret", SavedPromptID: "sp-1"},
		{APIToken: "secret", Skill: "review"},
	} {
		require.NoError(t, Validate(cfg))
	}
}

// TestInvocationMapping ensures the inputs land on the right invocation fields.
func TestInvocationMapping(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Prompt:           "p",
		SavedPromptID:    "sp",
		Skill:            "s",
		Model:            "m",
		AgentName:        "n",
		MCPConfig:        "{}",
		WorkingDirectory: "/w",
		Profile:          "prof",
		OutputFormat:     "json",
		ShareRecipients:  []string{"a@x.com"},
		Debug:            true,
	}

	o := cfg.Invocation()
	require.Equal(t, "p", o.Prompt)
	require.Equal(t, "sp", o.SavedPromptID)
	require.Equal(t, "s", o.Skill)
	require.Equal(t, "m", o.Model)
	require.Equal(t, "n", o.AgentName)
	require.Equal(t, "{}", o.MCPConfig)
	require.Equal(t, "/w", o.WorkingDirectory)
	require.Equal(t, "prof", o.Profile)
	require.Equal(t, "json", o.OutputFormat)
	require.Equal(t, []string{"a@x.com"}, o.ShareRecipients)
	require.True(t, o.Debug)
}

// TestSplitLines drops blanks and handles CRLF input.
func TestSplitLines(t *testing.T) {
	t.Parallel()

	require.Nil(t, splitLines(""))
	require.Equal(t, []string{"a@x.com"}, splitLines("a@x.com"))
	require.Equal(t, []string{"a@x.com", "b@y.com"}, splitLines("a@x.com\r\n\r\nb@y.com\n"))
}

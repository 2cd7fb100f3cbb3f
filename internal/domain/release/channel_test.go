package release

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseChannel checks the closed set of valid tracks and the failure message for the rest.
func TestParseChannel(t *testing.T) {
	t.Parallel()

	c, err := ParseChannel("stable")
	require.NoError(t, err)
	require.Equal(t, Stable, c)

	c, err = ParseChannel("preview")
	require.NoError(t, err)
	require.Equal(t, Preview, c)

	for _, value := range []string{"", "beta", "nightly", "Stable"} {
		_, err = ParseChannel(value)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrUnsupportedChannel)
		require.Equal(t, "Unsupported channel "+value, err.Error())
	}
}

// TestChannelCommand verifies the channel to command name mapping.
func TestChannelCommand(t *testing.T) {
	t.Parallel()

	cmd, err := Stable.Command()
	require.NoError(t, err)
	require.Equal(t, "oz", cmd)

	cmd, err = Preview.Command()
	require.NoError(t, err)
	require.Equal(t, "oz-preview", cmd)

	_, err = Channel("beta").Command()
	require.ErrorIs(t, err, ErrUnsupportedChannel)
}

// TestLogPath verifies the per-channel diagnostic log locations.
func TestLogPath(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		filepath.Join("/state", "warp-terminal", "warp.log"),
		LogPath("/state", Stable))
	require.Equal(t,
		filepath.Join("/state", "warp-terminal-preview", "warp_preview.log"),
		LogPath("/state", Preview))
}

// TestDefaultStateDir ensures the XDG override takes precedence over the home fallback.
func TestDefaultStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	require.Equal(t, "/custom/state", DefaultStateDir())

	t.Setenv("XDG_STATE_HOME", "")
	require.Contains(t, DefaultStateDir(), filepath.Join(".local", "state"))
}

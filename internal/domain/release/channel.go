package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Channel is a named release track selecting which build of the agent tool to use.
type Channel string

const (
	// Stable is the default release track.
	Stable Channel = "stable"
	// Preview is the early-access release track.
	Preview Channel = "preview"
)

// ErrUnsupportedChannel indicates a channel value outside the known set.
var ErrUnsupportedChannel = errors.New("Unsupported channel")

// ParseChannel validates a raw channel value against the closed set of tracks.
// Any other value, including the empty string, is rejected.
func ParseChannel(value string) (Channel, error) {
	switch Channel(value) {
	case Stable:
		return Stable, nil
	case Preview:
		return Preview, nil
	default:
		return "", fmt.Errorf("%w %s", ErrUnsupportedChannel, value)
	}
}

// Command returns the command name installed by this channel.
func (c Channel) Command() (string, error) {
	switch c {
	case Stable:
		return "oz", nil
	case Preview:
		return "oz-preview", nil
	default:
		return "", fmt.Errorf("%w %s", ErrUnsupportedChannel, string(c))
	}
}

// String implements fmt.Stringer.
func (c Channel) String() string {
	return string(c)
}

// LogPath returns the channel's diagnostic log location under the given
// state directory. Stable logs to warp-terminal/warp.log; every other
// channel gets a suffixed directory and log name.
func LogPath(stateDir string, c Channel) string {
	dirName := "warp-terminal"
	logName := "warp.log"

	if c != Stable {
		dirName += "-" + string(c)
		logName = fmt.Sprintf("warp_%s.log", c)
	}

	return filepath.Join(stateDir, dirName, logName)
}

// DefaultStateDir returns XDG_STATE_HOME when set, otherwise ~/.local/state.
func DefaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory means no sensible state location either;
		// a relative fallback keeps the path usable for error messages.
		return filepath.Join(".local", "state")
	}

	return filepath.Join(home, ".local", "state")
}

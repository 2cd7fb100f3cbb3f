package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/oshokin/warp-agent-action/internal/logger"
)

// ErrUnsupportedOS indicates the current OS has no package manager we can drive.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Install installs a .deb package with apt-get, prefixing sudo when the
// process is not root. apt-get needs an explicit path prefix to treat the
// argument as a file instead of a package name.
func Install(ctx context.Context, packagePath string) error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupportedOS)
	}

	path, err := filepath.Abs(packagePath)
	if err != nil {
		return fmt.Errorf("resolve package path: %w", err)
	}

	args := []string{"apt-get", "install", "-y", path}
	if os.Geteuid() != 0 {
		args = append([]string{"sudo"}, args...)
	}

	logger.InfoKV(ctx, "Installing package", "path", path)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		logger.Debugf(ctx, "Installer output:\n%s", output)
	}

	if err != nil {
		return fmt.Errorf("install package: %w", err)
	}

	return nil
}

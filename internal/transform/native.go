package transform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// NativeBundler runs an external toolchain's bundler on the entry file and
// takes the bundle from its stdout.
type NativeBundler struct {
	command []string
	timeout time.Duration
}

func NewNativeBundler(command []string, timeout time.Duration) *NativeBundler {
	return &NativeBundler{command: command, timeout: timeout}
}

func (b *NativeBundler) Transform(ctx context.Context, path, _ string) (string, error) {
	if len(b.command) == 0 {
		return "", errors.New("no bundle command configured")
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	args := append(append([]string{}, b.command[1:]...), path)
	cmd := exec.CommandContext(ctx, b.command[0], args...) //nolint:gosec // command comes from local config
	cmd.Dir = filepath.Dir(path)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("bundling timeout after %s", b.timeout)
	}

	if runErr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = runErr.Error()
		}

		return "", fmt.Errorf("%s failed: %s", b.command[0], msg)
	}

	if stdout.Len() == 0 {
		return "", fmt.Errorf("%s produced no output", b.command[0])
	}

	return stdout.String(), nil
}

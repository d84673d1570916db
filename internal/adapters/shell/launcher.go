// Package shell provides the process launcher adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/lanternmc/lantern/internal/core/domain"
	"github.com/lanternmc/lantern/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Executor using os/exec.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch starts the java process described by spec and waits for it to
// exit. Game output is streamed line by line through the logger.
func (l *Launcher) Launch(ctx context.Context, spec domain.LaunchSpec) error {
	cmd := exec.CommandContext(ctx, spec.JavaBin, spec.CommandLine()...) //nolint:gosec // java binary comes from the profile

	if spec.WorkDir != "" {
		cmd.Dir = spec.WorkDir
	}
	cmd.Env = os.Environ()

	cmd.Stdout = &logWriter{logger: l.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: l.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

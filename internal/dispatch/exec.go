package dispatch

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

const outputTailLines = 20

// Exec runs a single command synchronously. Failures are logged and handed to the
// failure callback; they are never returned as errors.
func (d *implDispatcher) Exec(ctx context.Context, cmd executor.Command) executor.Result {
	d.logger.Info(ctx, "Exec: %s", cmd)

	res := d.executor.Run(ctx, cmd)
	if res.Success() {
		d.logger.Info(ctx, "Exec %s successfully.", cmd)
		return res
	}

	d.logger.Error(ctx, "Exec %s failed (exit %d): %v", cmd, res.ExitCode, res.Err)
	if tail := tailLines(res.Output, outputTailLines); tail != "" {
		d.logger.Error(ctx, "Output:\n%s", tail)
	}
	if d.opts.OnFailure != nil {
		d.opts.OnFailure(ctx, cmd, res)
	}
	return res
}

// tailLines keeps the last n non-empty lines of s; ffmpeg prints its actual error at the end
func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

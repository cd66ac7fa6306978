package dispatch

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

// Dispatcher runs batches of independent commands on a bounded worker pool
type Dispatcher interface {
	Dispatch(ctx context.Context, label string, cmds []executor.Command) Stats
	Exec(ctx context.Context, cmd executor.Command) executor.Result
}

// FailureFunc is invoked with the original command when it exits non-zero
type FailureFunc func(ctx context.Context, cmd executor.Command, res executor.Result)

// Stats counts the outcome of one batch.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

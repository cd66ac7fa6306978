package dispatch

import (
	"io"
	"os"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

const defaultMaxWorkers = 4

type Options struct {
	MaxWorkers int
	// Progress renders a progress bar on ProgressWriter (stderr when nil)
	Progress       bool
	ProgressWriter io.Writer
	OnFailure      FailureFunc
}

type implDispatcher struct {
	executor executor.Executor
	logger   logger.Logger
	opts     Options
}

// New creates a new Dispatcher instance
func New(exec executor.Executor, log logger.Logger, opts Options) Dispatcher {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = defaultMaxWorkers
	}
	if opts.ProgressWriter == nil {
		opts.ProgressWriter = os.Stderr
	}

	return &implDispatcher{
		executor: exec,
		logger:   log,
		opts:     opts,
	}
}

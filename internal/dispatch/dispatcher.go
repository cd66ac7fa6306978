package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

// Dispatch submits every command to the worker pool and blocks until all of them
// have finished. Completion order is not observed. Once ctx is cancelled no new
// commands are started.
func (d *implDispatcher) Dispatch(ctx context.Context, label string, cmds []executor.Command) Stats {
	startTime := time.Now()
	stats := Stats{Total: len(cmds)}
	if len(cmds) == 0 {
		d.logger.Debug(ctx, "%s: nothing to dispatch", label)
		return stats
	}

	d.logger.Info(ctx, "%s: dispatching %d commands (max workers: %d)", label, len(cmds), d.opts.MaxWorkers)

	bar := d.newProgressBar(label, len(cmds))
	sem := newSemaphore(d.opts.MaxWorkers)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, cmd := range cmds {
		if err := sem.acquire(ctx); err != nil {
			d.logger.Warn(ctx, "%s: stopped submitting: %v", label, err)
			break
		}

		wg.Add(1)
		go func(cmd executor.Command) {
			defer wg.Done()
			defer sem.release()

			res := d.Exec(ctx, cmd)

			mu.Lock()
			if res.Success() {
				stats.Succeeded++
			} else {
				stats.Failed++
			}
			mu.Unlock()

			if bar != nil {
				_ = bar.Add(1)
			}
		}(cmd)
	}

	wg.Wait()
	if bar != nil {
		_ = bar.Finish()
	}

	stats.Skipped = stats.Total - stats.Succeeded - stats.Failed
	stats.Duration = time.Since(startTime)
	d.logger.Debug(ctx, "%s: %d succeeded, %d failed, %d not started in %s",
		label, stats.Succeeded, stats.Failed, stats.Skipped, stats.Duration)
	return stats
}

func (d *implDispatcher) newProgressBar(label string, total int) *progressbar.ProgressBar {
	if !d.opts.Progress {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(d.opts.ProgressWriter),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
	)
}

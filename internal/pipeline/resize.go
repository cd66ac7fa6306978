package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/recode-flow/internal/files"
	"github.com/nguyentantai21042004/recode-flow/internal/watcher"
	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

// Resize re-encodes every discovered file into the mirrored destination tree.
// With resize.watch set it keeps handling new files until ctx is cancelled.
func (p *implPipeline) Resize(ctx context.Context) error {
	src := p.discover(ctx)
	p.logger.Info(ctx, "Found %d files to resize to %s", len(src), p.cfg.Resize.Size)

	dests := make([]string, len(src))
	for i, f := range src {
		dests[i] = p.mirror(f)
	}

	// All destination directories exist before any encoder starts.
	for _, d := range dests {
		files.EnsureParentDir(ctx, p.logger, d)
	}

	cmds := make([]executor.Command, 0, len(src))
	for i := range src {
		cmds = append(cmds, p.resizeCommand(src[i], dests[i]))
	}

	startTime := time.Now()
	p.dispatcher.Dispatch(ctx, "resize", cmds)
	p.logger.Info(ctx, "Duration for recode all files: %s", time.Since(startTime))

	if p.cfg.Resize.Watch {
		return p.watch(ctx)
	}
	return nil
}

// resizeOne handles a single file arriving while watching
func (p *implPipeline) resizeOne(ctx context.Context, src string) error {
	dest := p.mirror(src)
	files.EnsureParentDir(ctx, p.logger, dest)
	p.dispatcher.Exec(ctx, p.resizeCommand(src, dest))
	return nil
}

func (p *implPipeline) watch(ctx context.Context) error {
	// Outputs written under a destination nested in the source must not re-trigger.
	outPrefix := p.cfg.Paths.Destination + string(filepath.Separator)
	filter := func(path string) bool {
		if strings.HasPrefix(path, outPrefix) {
			return false
		}
		return files.Match(path, p.cfg.Discovery.Extension, p.cfg.Discovery.Identifier)
	}

	w, err := watcher.New(p.cfg.Paths.Source, p.resizeOne, filter, p.logger, p.cfg.Performance.MaxWorkers)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

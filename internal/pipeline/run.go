package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/recode-flow/internal/files"
)

// Run orchestrates the configured pipeline
func (p *implPipeline) Run(ctx context.Context) error {
	if p.cfg.ResizeMode() {
		return p.Resize(ctx)
	}
	return p.Concat(ctx)
}

// discover lists the source clips, clearing Finder metadata first when asked to
func (p *implPipeline) discover(ctx context.Context) []string {
	if p.cfg.Discovery.RemoveDSStore {
		files.RemoveDSStore(ctx, p.logger, p.cfg.Paths.Source)
	}
	return files.Discover(ctx, p.logger, p.cfg.Paths.Source, p.cfg.Discovery.Extension, p.cfg.Discovery.Identifier)
}

func (p *implPipeline) mirror(path string) string {
	return files.MirrorPath(path, p.cfg.Paths.Source, p.cfg.Paths.Destination)
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/recode-flow/internal/files"
	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

type concatJob struct {
	group    Group
	dest     string
	manifest string
}

// Concat joins every group of clips into one file under the destination root
func (p *implPipeline) Concat(ctx context.Context) error {
	src := p.discover(ctx)
	groups := GroupClips(src, p.key, p.cfg.Grouping.MemberOrder)
	p.logger.Info(ctx, "Found %d clips in %d groups", len(src), len(groups))

	jobs := p.planConcat(groups)

	cmds := make([]executor.Command, 0, len(jobs))
	for _, job := range jobs {
		files.EnsureParentDir(ctx, p.logger, job.dest)
		if err := writeManifest(job.manifest, job.group.Members); err != nil {
			return fmt.Errorf("group %s in %s: %w", job.group.Key, job.group.Dir, err)
		}
		p.logger.Debug(ctx, "Wrote manifest %s (%d clips)", job.manifest, len(job.group.Members))
		cmds = append(cmds, p.concatCommand(job.manifest, job.dest))
	}

	startTime := time.Now()
	p.dispatcher.Dispatch(ctx, "concat", cmds)
	p.logger.Info(ctx, "Duration for all files: %s", time.Since(startTime))

	return nil
}

// planConcat derives the output and manifest path of every group from its template member
func (p *implPipeline) planConcat(groups []Group) []concatJob {
	jobs := make([]concatJob, 0, len(groups))
	for _, g := range groups {
		dest := p.mirror(g.Template())
		jobs = append(jobs, concatJob{
			group:    g,
			dest:     dest,
			manifest: files.ReplaceExt(dest, p.cfg.Discovery.Extension, ".txt"),
		})
	}
	return jobs
}

package pipeline

import "github.com/nguyentantai21042004/recode-flow/pkg/executor"

// concatCommand joins the clips listed in manifest without re-encoding
func (p *implPipeline) concatCommand(manifest, dest string) executor.Command {
	// -safe 0: manifest entries are absolute paths
	return executor.NewCommand(p.cfg.FFmpeg.Binary,
		"-f", "concat",
		"-safe", "0",
		"-i", manifest,
		"-c", "copy",
		dest,
	)
}

// resizeCommand re-encodes src with the configured encoder; size is used verbatim as the -vf expression
func (p *implPipeline) resizeCommand(src, dest string) executor.Command {
	return executor.NewCommand(p.cfg.FFmpeg.Binary,
		"-i", src,
		"-c:v", p.cfg.FFmpeg.Encoder,
		"-vf", p.cfg.Resize.Size,
		"-q:v", p.cfg.FFmpeg.Quality,
		dest,
	)
}

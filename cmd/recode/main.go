package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/recode-flow/internal/config"
	"github.com/nguyentantai21042004/recode-flow/internal/dispatch"
	"github.com/nguyentantai21042004/recode-flow/internal/logger"
	"github.com/nguyentantai21042004/recode-flow/internal/pipeline"
	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

const description = `Resize videos or concatenate clips from a source directory into a mirrored destination directory.
If --dst_size is provided, videos are resized. Otherwise, clips are concatenated.

Usage examples:
  1. Resize videos:      recode src_path dst_path --dst_size 1280x720
  2. Concatenate clips:  recode src_path dst_path`

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "recode: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "recode <src_root> <dst_root>",
		Short:         "Batch concatenate or resize videos with ffmpeg",
		Long:          description,
		Args:          rootArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.buildConfig(cmd, args)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
	f.register(cmd)
	return cmd
}

// rootArgs accepts both roots, or none when a config file provides them
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 2 || (len(args) == 0 && cmd.Flags().Changed("config")) {
		return nil
	}
	return fmt.Errorf("requires <src_root> <dst_root> unless --config sets paths, received %d args", len(args))
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithNewRunID(ctx)

	log := logger.New(cfg.Logging.Level)

	mode := "concat"
	if cfg.ResizeMode() {
		mode = "resize"
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Recode (%s)", mode)
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU Cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Source: %s", cfg.Paths.Source)
	log.Info(ctx, "Destination: %s", cfg.Paths.Destination)
	log.Info(ctx, "Filter: *%s containing %q", cfg.Discovery.Extension, cfg.Discovery.Identifier)
	log.Info(ctx, "Max workers: %d", cfg.Performance.MaxWorkers)
	if cfg.ResizeMode() {
		log.Info(ctx, "Resize: -vf %s, encoder %s, quality %s", cfg.Resize.Size, cfg.FFmpeg.Encoder, cfg.FFmpeg.Quality)
	}

	if err := executor.LookPath(cfg.FFmpeg.Binary); err != nil {
		log.Warn(ctx, "%v; every command will fail", err)
	}

	var stream io.Writer
	if cfg.FFmpeg.ShowOutput {
		stream = os.Stderr
	}
	exec := executor.New(stream)
	d := dispatch.New(exec, log, dispatch.Options{
		MaxWorkers: cfg.Performance.MaxWorkers,
		Progress:   cfg.Logging.Progress,
		OnFailure: func(ctx context.Context, cmd executor.Command, res executor.Result) {
			log.Warn(ctx, "Not retried: %s", cmd)
		},
	})

	if err := pipeline.New(cfg, d, log).Run(ctx); err != nil {
		log.Error(ctx, "Pipeline failed: %v", err)
		return err
	}

	log.Info(ctx, "Done")
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/recode-flow/internal/config"
)

type flags struct {
	configPath    string
	dstSize       string
	maxWorkers    int
	extension     string
	identifier    string
	prefixLength  int
	memberOrder   string
	binary        string
	encoder       string
	quality       string
	logLevel      string
	progress      bool
	showOutput    bool
	removeDSStore bool
	watch         bool
}

func (f *flags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file; explicitly set flags override it")
	fs.StringVar(&f.dstSize, "dst_size", "", "Size or filter expression to resize to, e.g. '1280x720'. Enables resize mode")
	fs.IntVar(&f.maxWorkers, "max_workers", config.DefaultMaxWorkers, "Number of ffmpeg processes to run at once")
	fs.StringVar(&f.extension, "extension", config.DefaultExtension, "File extension to filter videos in the source directory")
	fs.StringVar(&f.identifier, "identifier", config.DefaultIdentifier, "String that must be present in the path of source videos")
	fs.IntVar(&f.prefixLength, "prefix_length", config.DefaultPrefixLength, "Number of leading filename characters shared by clips of one recording")
	fs.StringVar(&f.memberOrder, "member_order", config.OrderLexical, "Clip order inside a group: lexical or natural")
	fs.StringVar(&f.binary, "ffmpeg", config.DefaultBinary, "ffmpeg binary")
	fs.StringVar(&f.encoder, "encoder", config.DefaultEncoder, "Video encoder used when resizing")
	fs.StringVar(&f.quality, "quality", config.DefaultQuality, "Value passed to -q:v when resizing")
	fs.StringVar(&f.logLevel, "log_level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&f.progress, "progress", false, "Show a progress bar on stderr")
	fs.BoolVar(&f.showOutput, "show_output", false, "Stream ffmpeg output to stderr")
	fs.BoolVar(&f.removeDSStore, "remove_ds_store", false, "Delete .DS_Store entries under the source root first")
	fs.BoolVar(&f.watch, "watch", false, "After resizing, keep watching the source root for new files")
}

// buildConfig layers defaults, the optional config file and explicitly set flags, in that order
func (f *flags) buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) == 2 {
		cfg.Paths.Source = args[0]
		cfg.Paths.Destination = args[1]
	}

	fs := cmd.Flags()
	if fs.Changed("dst_size") {
		cfg.Resize.Size = f.dstSize
	}
	if fs.Changed("max_workers") {
		cfg.Performance.MaxWorkers = f.maxWorkers
	}
	if fs.Changed("extension") {
		cfg.Discovery.Extension = f.extension
	}
	if fs.Changed("identifier") {
		cfg.Discovery.Identifier = f.identifier
	}
	if fs.Changed("prefix_length") {
		cfg.Grouping.PrefixLength = f.prefixLength
	}
	if fs.Changed("member_order") {
		cfg.Grouping.MemberOrder = f.memberOrder
	}
	if fs.Changed("ffmpeg") {
		cfg.FFmpeg.Binary = f.binary
	}
	if fs.Changed("encoder") {
		cfg.FFmpeg.Encoder = f.encoder
	}
	if fs.Changed("quality") {
		cfg.FFmpeg.Quality = f.quality
	}
	if fs.Changed("log_level") {
		cfg.Logging.Level = f.logLevel
	}
	if fs.Changed("progress") {
		cfg.Logging.Progress = f.progress
	}
	if fs.Changed("show_output") {
		cfg.FFmpeg.ShowOutput = f.showOutput
	}
	if fs.Changed("remove_ds_store") {
		cfg.Discovery.RemoveDSStore = f.removeDSStore
	}
	if fs.Changed("watch") {
		cfg.Resize.Watch = f.watch
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ResolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package pipeline

import (
	"github.com/nguyentantai21042004/recode-flow/internal/config"
	"github.com/nguyentantai21042004/recode-flow/internal/dispatch"
	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

type implPipeline struct {
	cfg        *config.Config
	dispatcher dispatch.Dispatcher
	logger     logger.Logger
	key        KeyFunc
}

// New creates a new Pipeline instance. cfg is expected to be validated.
func New(cfg *config.Config, d dispatch.Dispatcher, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		dispatcher: d,
		logger:     log,
		key:        PrefixKey(cfg.Grouping.PrefixLength),
	}
}

package pipeline

import "context"

// Pipeline defines the batch operations over a source tree
type Pipeline interface {
	// Run selects Resize when a destination size is configured and Concat otherwise
	Run(ctx context.Context) error
	Concat(ctx context.Context) error
	Resize(ctx context.Context) error
}

package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles a newly created file
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a created file should be handed to the EventHandler
type Filter func(filePath string) bool

package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher over root and all of its subdirectories.
// Handlers run concurrently, at most maxConcurrent at a time.
func New(root string, handler EventHandler, filter Filter, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}

	w := &implWatcher{
		root:          root,
		handler:       handler,
		filter:        filter,
		logger:        log,
		watcher:       fsw,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		settleDelay:   defaultSettleDelay,
		seen:          make(map[string]struct{}),
	}

	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}

package dispatch

import "context"

// semaphore bounds how many external processes run at once
type semaphore struct {
	slots chan struct{}
}

func newSemaphore(capacity int) *semaphore {
	if capacity <= 0 {
		capacity = 1
	}
	return &semaphore{
		slots: make(chan struct{}, capacity),
	}
}

// acquire blocks until a slot is free. A cancelled ctx always wins over a free
// slot so no new process is started after cancellation.
func (s *semaphore) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	<-s.slots
}

func (s *semaphore) inUse() int {
	return len(s.slots)
}

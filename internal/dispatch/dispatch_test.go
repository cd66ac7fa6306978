package dispatch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/recode-flow/internal/logger"
	"github.com/nguyentantai21042004/recode-flow/pkg/executor"
)

// fakeExecutor fails every command whose output path contains "bad" and
// tracks how many commands run at the same time.
type fakeExecutor struct {
	delay   time.Duration
	running atomic.Int32
	peak    atomic.Int32

	mu  sync.Mutex
	ran []string
}

func (f *fakeExecutor) Run(ctx context.Context, cmd executor.Command) executor.Result {
	n := f.running.Add(1)
	defer f.running.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(f.delay)

	f.mu.Lock()
	f.ran = append(f.ran, cmd.String())
	f.mu.Unlock()

	if strings.Contains(cmd.String(), "bad") {
		return executor.Result{ExitCode: 1, Output: "line1\nconversion failed\n", Err: errors.New("exit status 1")}
	}
	return executor.Result{}
}

func commands(names ...string) []executor.Command {
	cmds := make([]executor.Command, 0, len(names))
	for _, n := range names {
		cmds = append(cmds, executor.NewCommand("ffmpeg", "-i", n+".mp4", n+"-out.mp4"))
	}
	return cmds
}

func discard() logger.Logger {
	return logger.NewWithWriter("debug", io.Discard)
}

func TestDispatchFailureIsolation(t *testing.T) {
	exec := &fakeExecutor{delay: 5 * time.Millisecond}

	var (
		mu     sync.Mutex
		failed []string
	)
	d := New(exec, discard(), Options{
		MaxWorkers: 2,
		OnFailure: func(ctx context.Context, cmd executor.Command, res executor.Result) {
			mu.Lock()
			defer mu.Unlock()
			failed = append(failed, cmd.Args[1])
		},
	})

	stats := d.Dispatch(context.Background(), "test", commands("a", "bad1", "b", "c", "bad2", "d"))

	if stats.Total != 6 || stats.Succeeded != 4 || stats.Failed != 2 || stats.Skipped != 0 {
		t.Errorf("Dispatch() stats = %+v, want 6 total, 4 succeeded, 2 failed", stats)
	}
	if len(exec.ran) != 6 {
		t.Errorf("ran %d commands, want %d", len(exec.ran), 6)
	}
	if len(failed) != 2 {
		t.Errorf("failure callback called %d times, want %d", len(failed), 2)
	}
	for _, f := range failed {
		if !strings.HasPrefix(f, "bad") {
			t.Errorf("failure callback got %q, want a bad command", f)
		}
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	exec := &fakeExecutor{delay: 20 * time.Millisecond}
	d := New(exec, discard(), Options{MaxWorkers: 3})

	d.Dispatch(context.Background(), "test", commands("a", "b", "c", "d", "e", "f", "g", "h", "i"))

	if peak := exec.peak.Load(); peak > 3 {
		t.Errorf("peak concurrency = %v, want <= %v", peak, 3)
	}
	if peak := exec.peak.Load(); peak < 2 {
		t.Errorf("peak concurrency = %v, commands did not run in parallel", peak)
	}
}

func TestDispatchEmpty(t *testing.T) {
	exec := &fakeExecutor{}
	stats := New(exec, discard(), Options{}).Dispatch(context.Background(), "test", nil)

	if stats.Total != 0 || stats.Succeeded != 0 || stats.Failed != 0 {
		t.Errorf("Dispatch() stats = %+v, want zero", stats)
	}
	if len(exec.ran) != 0 {
		t.Errorf("ran %d commands, want none", len(exec.ran))
	}
}

func TestDispatchCancelled(t *testing.T) {
	exec := &fakeExecutor{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats := New(exec, discard(), Options{MaxWorkers: 2}).Dispatch(ctx, "test", commands("a", "b", "c"))

	if len(exec.ran) != 0 {
		t.Errorf("ran %d commands after cancellation, want none", len(exec.ran))
	}
	if stats.Skipped != 3 {
		t.Errorf("Skipped = %v, want %v", stats.Skipped, 3)
	}
}

func TestDispatchProgress(t *testing.T) {
	var bar bytes.Buffer
	d := New(&fakeExecutor{}, discard(), Options{Progress: true, ProgressWriter: &bar})

	d.Dispatch(context.Background(), "resize", commands("a", "b"))

	if !strings.Contains(bar.String(), "resize") {
		t.Errorf("progress output = %q, want it to contain the label", bar.String())
	}
}

func TestExecLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	d := New(&fakeExecutor{}, logger.NewWithWriter("info", &buf), Options{})
	ctx := context.Background()

	ok := d.Exec(ctx, executor.NewCommand("ffmpeg", "-i", "good.mp4", "out.mp4"))
	bad := d.Exec(ctx, executor.NewCommand("ffmpeg", "-i", "bad.mp4", "out.mp4"))

	if !ok.Success() {
		t.Error("Exec(good) should succeed")
	}
	if bad.Success() {
		t.Error("Exec(bad) should fail")
	}

	out := buf.String()
	for _, want := range []string{
		"Exec: ffmpeg -i good.mp4 out.mp4",
		"Exec ffmpeg -i good.mp4 out.mp4 successfully.",
		"Exec ffmpeg -i bad.mp4 out.mp4 failed (exit 1)",
		"conversion failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestTailLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than n", "a\nb\n", 5, "a\nb"},
		{"truncated", "a\nb\nc\nd\n", 2, "c\nd"},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tailLines(tt.in, tt.n); got != tt.want {
				t.Errorf("tailLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSemaphore(t *testing.T) {
	ctx := context.Background()
	sem := newSemaphore(1)

	if err := sem.acquire(ctx); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	if sem.inUse() != 1 {
		t.Errorf("inUse() = %v, want %v", sem.inUse(), 1)
	}

	timeout, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	if err := sem.acquire(timeout); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("acquire() on full semaphore error = %v, want deadline exceeded", err)
	}

	sem.release()
	if sem.inUse() != 0 {
		t.Errorf("inUse() = %v, want %v", sem.inUse(), 0)
	}
}

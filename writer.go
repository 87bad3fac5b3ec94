package logq

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// Writer owns the log file and the single consumer goroutine that
// drains the queue. No other goroutine ever touches the file, so
// writes need no lock of their own. An exclusive flock on a sidecar
// lock file keeps a second process off the same path.
type Writer struct {
	queue *Queue
	file  *os.File
	out   *bufio.Writer
	lock  *flock.Flock
	pool  *BufferPool
	path  string
	onErr ErrorHandler

	state   atomic.Int32
	dropped atomic.Uint64

	done     chan struct{}
	shutdown sync.Once
}

// newWriter prepares the log file and starts the worker goroutine.
// The worker is started asynchronously; construction never waits on
// it.
func newWriter(cfg *Config) (*Writer, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}

	lock := flock.New(cfg.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, errors.Wrap(err, "acquiring file lock")
	}

	mode := os.O_CREATE | os.O_WRONLY
	if cfg.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}
	file, err := os.OpenFile(cfg.Path, mode, 0o644)
	if err != nil {
		lock.Unlock()
		return nil, errors.Wrap(err, "opening log file")
	}

	w := &Writer{
		queue: NewQueue(),
		file:  file,
		out:   bufio.NewWriterSize(file, defaultBufferSize),
		lock:  lock,
		pool:  NewBufferPool(defaultBufferSize),
		path:  cfg.Path,
		onErr: cfg.ErrorHandler,
		done:  make(chan struct{}),
	}
	w.state.Store(int32(stateCreated))
	go w.run()
	return w, nil
}

// Enqueue hands an entry to the worker. Entries arriving after
// shutdown has been requested are counted and discarded.
func (w *Writer) Enqueue(e Entry) {
	if !w.queue.Enqueue(e) {
		w.dropped.Add(1)
	}
}

// Shutdown closes the queue and waits until every already-enqueued
// entry has been written, the sentinel line appended and the file
// closed. The wait is unbounded under context.Background(); pass a
// deadline context to cap it. Calling Shutdown again is a no-op that
// observes the same final state.
func (w *Writer) Shutdown(ctx context.Context) error {
	w.shutdown.Do(func() {
		w.state.CompareAndSwap(int32(stateRunning), int32(stateDraining))
		w.queue.Close()
	})
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for log writer to drain")
	}
}

// IsClosed reports whether the worker has finalized the file.
func (w *Writer) IsClosed() bool {
	return writerState(w.state.Load()) == stateClosed
}

// Dropped reports how many entries arrived after shutdown and were
// discarded.
func (w *Writer) Dropped() uint64 {
	return w.dropped.Load()
}

// run is the worker loop: drain the queue, append each entry, flush
// after every write. A failed write is reported and the loop moves on;
// one bad entry must not cost the ability to log later ones.
func (w *Writer) run() {
	w.state.CompareAndSwap(int32(stateCreated), int32(stateRunning))
	for {
		e, ok := w.queue.Dequeue()
		if !ok {
			break
		}
		w.writeEntry(e)
	}
	w.finalize()
}

func (w *Writer) writeEntry(e Entry) {
	buf := w.pool.Get()
	defer w.pool.Put(buf)
	appendEntry(buf, e)
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		w.reportError("write", err)
		// bufio errors are sticky; reset so the next entry can still
		// reach the file once the fault clears.
		w.out.Reset(w.file)
		return
	}
	if err := w.out.Flush(); err != nil {
		w.reportError("flush", err)
		w.out.Reset(w.file)
	}
}

// finalize appends the sentinel line, syncs and closes the file, and
// releases the cross-process lock. Runs exactly once, on the worker
// goroutine, after the queue reports end-of-stream.
func (w *Writer) finalize() {
	if _, err := w.out.WriteString(sentinelLine + "\n"); err != nil {
		w.reportError("write", err)
	}
	if err := w.out.Flush(); err != nil {
		w.reportError("flush", err)
	}
	if err := w.file.Sync(); err != nil {
		w.reportError("close", err)
	}
	if err := w.file.Close(); err != nil {
		w.reportError("close", err)
	}
	if err := w.lock.Unlock(); err != nil {
		w.reportError("close", err)
	}
	w.state.Store(int32(stateClosed))
	close(w.done)
}

func (w *Writer) reportError(source string, err error) {
	if w.onErr == nil {
		return
	}
	w.onErr(LogError{Time: time.Now(), Source: source, Path: w.path, Err: err})
}

// Package async runs a fieldcodec.Logger off the caller's goroutine.
//
// usage:
//
//	zl := zaplog.New(zap.Must(zap.NewProduction()))
//	l := async.New(zl, 1, 1000) // 1 worker; queue 1000 entries
//	defer l.Close()
//
//	c := codec.Observed[Order]{Inner: codec.JSON[Order]{}, Name: "orders", Logger: l}
package async

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/fieldcodec"
)

// Logger queues entries for inner. When the queue is full the entry is
// dropped and counted rather than blocking the decode path.
type Logger struct {
	inner   fieldcodec.Logger
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ fieldcodec.Logger = (*Logger)(nil)

func New(inner fieldcodec.Logger, workers, qlen int) *Logger {
	if inner == nil {
		inner = fieldcodec.NopLogger{}
	}
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	l := &Logger{inner: inner, q: make(chan func(), qlen)}
	l.wg.Add(workers)
	for range workers {
		go func() {
			defer l.wg.Done()
			for f := range l.q {
				f()
			}
		}()
	}
	return l
}

// Close flushes queued entries and stops the workers. Entries logged after
// Close are dropped.
func (l *Logger) Close() {
	l.once.Do(func() {
		l.mu.Lock()
		l.closed = true
		close(l.q)
		l.mu.Unlock()
		l.wg.Wait()
	})
}

// Dropped reports how many entries were discarded.
func (l *Logger) Dropped() uint64 { return l.dropped.Load() }

func (l *Logger) try(f func()) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.dropped.Add(1)
		return
	}
	select {
	case l.q <- f:
	default:
		l.dropped.Add(1)
	}
}

func (l *Logger) Debug(msg string, f fieldcodec.Fields) { l.try(func() { l.inner.Debug(msg, f) }) }
func (l *Logger) Info(msg string, f fieldcodec.Fields)  { l.try(func() { l.inner.Info(msg, f) }) }
func (l *Logger) Warn(msg string, f fieldcodec.Fields)  { l.try(func() { l.inner.Warn(msg, f) }) }
func (l *Logger) Error(msg string, f fieldcodec.Fields) { l.try(func() { l.inner.Error(msg, f) }) }

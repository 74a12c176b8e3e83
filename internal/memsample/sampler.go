package memsample

import (
	"errors"
	"log/slog"
	"time"
)

// DefaultInterval is the default polling cadence.
//
// 30ms is frequent enough to catch the peak of most allocations without
// the sampler itself distorting short or memory-sensitive workloads.
const DefaultInterval = 30 * time.Millisecond

// Sampler watches one process on its own goroutine and keeps a running
// maximum of its resident memory.
//
// The peak is written only by the sampler goroutine and must be read via
// Peak() after Stop() returns; the join establishes the happens-before
// edge that makes the plain fields safe.
type Sampler struct {
	backend  Backend
	pid      int32
	interval time.Duration
	logger   *slog.Logger

	// Written only by the sampling goroutine.
	peak  uint64
	polls int

	stop chan struct{}
	done chan struct{}
}

// Start begins sampling the given pid and returns immediately.
// An initial poll fires right away so processes that exit before the
// first tick still get a chance to register a reading.
func Start(backend Backend, pid int32, interval time.Duration, logger *slog.Logger) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s := &Sampler{
		backend:  backend,
		pid:      pid,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.loop()
	return s
}

// Stop ends sampling and blocks until the sampling goroutine has exited.
// After Stop returns no further writes to the peak can occur.
func (s *Sampler) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

// Peak returns the highest RSS observed, in bytes. lowConfidence is true
// when no poll succeeded before the process went away; callers should
// treat the zero value as "too short-lived to measure", not as an error.
//
// Only valid after Stop has returned.
func (s *Sampler) Peak() (bytes uint64, lowConfidence bool) {
	return s.peak, s.polls == 0
}

func (s *Sampler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Immediate first poll at launch.
	if !s.poll() {
		return
	}

	for {
		select {
		case <-s.stop:
			// Final attempt; the process is usually gone by now and
			// the last valid sample stands.
			s.poll()
			return
		case <-ticker.C:
			if !s.poll() {
				return
			}
		}
	}
}

// poll takes one sample. It returns false once the process is gone.
// Transient errors are skipped and retried on the next tick.
func (s *Sampler) poll() bool {
	rss, err := s.backend.Sample(s.pid)
	if err != nil {
		if errors.Is(err, ErrProcessGone) {
			return false
		}
		s.logger.Debug("memory_poll_failed", "pid", s.pid, "error", err)
		return true
	}
	s.polls++
	if rss > s.peak {
		s.peak = rss
	}
	return true
}

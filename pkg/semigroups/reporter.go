package semigroups

import (
	"log"
	"sync"
)

// Reporter is an optional, nil-safe diagnostic logger every engine in this
// package may be given, adapted from the teacher's ContextMonitor
// (pkg/minikanren/context_utils.go): a named session wrapping a standard
// *log.Logger that reports checkpoint/coincidence/critical-pair counts when
// a logger is attached, and stays a complete no-op — including on a nil
// *Reporter itself — when one isn't, so call sites never need to guard
// "if reporter != nil" before every report.
//
// Unlike ContextMonitor, this carries no cancellation-cleanup machinery:
// every engine in this package already checks context.Context directly at
// its own checkpoint boundaries (spec.md §5), so a Reporter's only job is
// counting and, optionally, printing.
type Reporter struct {
	name   string
	logger *log.Logger

	mu     sync.Mutex
	counts map[string]int64
}

// NewReporter builds a Reporter tagged name, logging through logger. A nil
// logger is legal: the Reporter still counts events, it just never prints.
func NewReporter(name string, logger *log.Logger) *Reporter {
	return &Reporter{name: name, logger: logger, counts: make(map[string]int64)}
}

// Report increments event's counter and, if a logger is attached, writes a
// line naming it, its running count, and detail (which may be empty).
func (r *Reporter) Report(event, detail string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.counts[event]++
	n := r.counts[event]
	r.mu.Unlock()
	if r.logger == nil {
		return
	}
	if detail == "" {
		r.logger.Printf("[%s] %s #%d", r.name, event, n)
		return
	}
	r.logger.Printf("[%s] %s #%d: %s", r.name, event, n, detail)
}

// Count returns how many times event has been reported so far. Safe to call
// on a nil *Reporter (always 0).
func (r *Reporter) Count(event string) int64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[event]
}

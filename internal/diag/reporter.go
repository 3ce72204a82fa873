// © 2024 Huff Language
//
// SPDX-License-Identifier: Apache-2.0

package diag

import "sync"

// Reporter accumulates lexical errors across a full pass. Lexical errors are
// never fatal to the pass, so drivers report each error as it is yielded and
// show the whole set at the end rather than aborting on the first fault.
type Reporter interface {
	// Report adds the given error to the set.
	Report(*LexicalError)
	// Reported returns the accumulated errors in yield order.
	Reported() []*LexicalError
}

// NewReporter returns a concurrent-safe implementation of Reporter. A single
// lexer is single-threaded, but one reporter may collect from several lexers
// running over independent buffers.
func NewReporter() Reporter {
	return &reporterLock{
		reporter: &reporter{},
		lock:     &sync.Mutex{},
	}
}

type reporter struct {
	reported []*LexicalError
}

func (r *reporter) Report(e *LexicalError) {
	r.reported = append(r.reported, e)
}

func (r *reporter) Reported() []*LexicalError {
	return r.reported
}

type reporterLock struct {
	reporter Reporter
	lock     sync.Locker
}

func (r *reporterLock) Report(e *LexicalError) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reporter.Report(e)
}

func (r *reporterLock) Reported() []*LexicalError {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.reporter.Reported()
}

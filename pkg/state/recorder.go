package state

import "time"

// Recorder is the stopwatch state machine: idle, or running since a start
// timestamp. It lives for the session only and is owned by a single view
// layer, so it carries no locking.
type Recorder struct {
	startedAt *time.Time
}

// Running reports whether a recording is in progress.
func (r *Recorder) Running() bool {
	return r.startedAt != nil
}

// StartedAt returns the running start timestamp, if any.
func (r *Recorder) StartedAt() (time.Time, bool) {
	if r.startedAt == nil {
		return time.Time{}, false
	}
	return *r.startedAt, true
}

// Start transitions idle -> running. Starting while already running is a
// no-op and reports false.
func (r *Recorder) Start(now time.Time) bool {
	if r.startedAt != nil {
		return false
	}
	t := now
	r.startedAt = &t
	return true
}

// Stop transitions running -> idle and hands back the closed interval exactly
// once, so the caller fires exactly one create effect. Stopping while idle is
// a no-op and reports false.
func (r *Recorder) Stop(now time.Time) (start, end time.Time, ok bool) {
	if r.startedAt == nil {
		return time.Time{}, time.Time{}, false
	}
	start = *r.startedAt
	r.startedAt = nil
	return start, now, true
}

// Elapsed is the running time as of now, zero when idle.
func (r *Recorder) Elapsed(now time.Time) time.Duration {
	if r.startedAt == nil {
		return 0
	}
	return now.Sub(*r.startedAt)
}

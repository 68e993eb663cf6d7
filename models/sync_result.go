// SPDX-License-Identifier: Apache-2.0

package models

// SyncStatus is the coarse outcome of one synchronizer run.
type SyncStatus int

const (
	// SyncCompleted means the run finished; the mirror reflects the server
	// state that was visible during the run (possibly short of the newest
	// pages when the run was interrupted by a conflict).
	SyncCompleted SyncStatus = iota

	// SyncNotStarted means a precondition failed before any network activity;
	// Reason says which one.
	SyncNotStarted

	// SyncFailed means the run started and hit a hard error; Err carries it.
	SyncFailed
)

func (s SyncStatus) String() string {
	switch s {
	case SyncCompleted:
		return "completed"
	case SyncNotStarted:
		return "not started"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncResult is the terminal report of a synchronizer run. Nothing in it is
// fatal to the host application: a failed attempt simply defers to the next
// scheduled one.
type SyncResult struct {
	Status SyncStatus
	Reason string
	Err    error
}

// SyncCompletedResult reports a finished run.
func SyncCompletedResult() SyncResult {
	return SyncResult{Status: SyncCompleted}
}

// SyncNotStartedResult reports a run that was skipped before any network
// activity, with the precondition that failed.
func SyncNotStartedResult(reason string) SyncResult {
	return SyncResult{Status: SyncNotStarted, Reason: reason}
}

// SyncFailedResult reports a run terminated by a hard error.
func SyncFailedResult(err error) SyncResult {
	return SyncResult{Status: SyncFailed, Err: err}
}

// SPDX-License-Identifier: Apache-2.0

package models

// EndState classifies the terminal outcome of a single downloader step.
type EndState int

const (
	// EndStateUnknown is the zero value; it is never returned together with
	// a nil error.
	EndStateUnknown EndState = iota

	// EndStateComplete means the page sequence is finished: apply the
	// accumulated records, then stop.
	EndStateComplete

	// EndStateIncomplete means more pages are pending: apply the accumulated
	// records, then invoke the downloader again.
	EndStateIncomplete

	// EndStateNoNewData means the collection has not changed since the last
	// fully completed run; nothing to fetch, nothing to apply.
	EndStateNoNewData

	// EndStateInterrupted means a concurrent server-side mutation invalidated
	// the continuation offset mid-sequence. The offset has been cleared;
	// records buffered before the conflict are still valid server state.
	EndStateInterrupted
)

func (s EndState) String() string {
	switch s {
	case EndStateComplete:
		return "complete"
	case EndStateIncomplete:
		return "incomplete"
	case EndStateNoNewData:
		return "no-new-data"
	case EndStateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

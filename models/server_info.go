// SPDX-License-Identifier: Apache-2.0

package models

// ServerInfo is the server's per-collection modification summary, as returned
// by the info/collections endpoint. The downloader compares these timestamps
// against its persisted cursor state to decide whether a collection has new
// data at all before issuing any storage request.
type ServerInfo struct {
	// Collections maps a collection name to the timestamp of its most recent
	// modification.
	Collections map[string]Timestamp `json:"collections"`
}

// Modified returns the modification timestamp of the named collection and
// whether the server reported the collection at all. A collection absent from
// the summary has never been written to.
func (s ServerInfo) Modified(collection string) (Timestamp, bool) {
	ts, ok := s.Collections[collection]
	return ts, ok
}

// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// Timestamp is a server-assigned modification time in milliseconds since the
// Unix epoch. The zero value means "never" and is the starting point for a
// fresh download sequence.
type Timestamp uint64

// Record is the wire-level envelope for one collection entry, as returned by
// the storage server. The payload is kept opaque at this level; it is decoded
// into a typed payload (e.g. [BookmarkPayload]) by a codec only when the
// record is projected into the local mirror.
type Record struct {
	// ID is the server-wide unique identifier (GUID) of the record.
	ID string `json:"id"`

	// Collection is the name of the collection this record belongs to.
	// It is not part of the wire payload; the client fills it in from the
	// request context.
	Collection string `json:"-"`

	// Payload is the opaque serialized payload. Depending on the account
	// configuration it is either a plain JSON object or an encrypted blob
	// that a codec must open first.
	Payload json.RawMessage `json:"payload"`

	// Modified is the server-assigned modification timestamp of the record.
	Modified Timestamp `json:"modified"`

	// SortIndex is an optional hint for presentation ordering.
	SortIndex *int `json:"sortindex,omitempty"`

	// TTL is an optional time-to-live in seconds after which the server may
	// drop the record.
	TTL *int `json:"ttl,omitempty"`
}

// FetchResponse is the decoded result of one successful page fetch against a
// collection.
type FetchResponse struct {
	// Records holds the page's records, in the server's sort order
	// (newest first).
	Records []Record

	// LastModified is the collection-wide modification timestamp reported by
	// the server alongside this page.
	LastModified Timestamp

	// NextOffset is the opaque continuation token for the next page. Empty
	// means this was the final page of the sequence.
	NextOffset string
}

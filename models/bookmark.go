// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"
	"fmt"
)

// BookmarkType is the type tag carried by every bookmark payload.
type BookmarkType string

const (
	BookmarkTypeFolder    BookmarkType = "folder"
	BookmarkTypeBookmark  BookmarkType = "bookmark"
	BookmarkTypeSeparator BookmarkType = "separator"
	BookmarkTypeQuery     BookmarkType = "query"
	BookmarkTypeLivemark  BookmarkType = "livemark"
)

// Known reports whether t is one of the bookmark types this client
// understands. Unknown types are skipped during projection, not treated as
// fatal, so that newer servers can introduce types without breaking older
// clients.
func (t BookmarkType) Known() bool {
	switch t {
	case BookmarkTypeFolder, BookmarkTypeBookmark, BookmarkTypeSeparator,
		BookmarkTypeQuery, BookmarkTypeLivemark:
		return true
	}
	return false
}

// Payload validation errors.
var (
	ErrUnknownBookmarkType = errors.New("unknown bookmark type")
	ErrMissingParent       = errors.New("bookmark payload has no parent reference")
	ErrMissingURI          = errors.New("bookmark payload has no URI")
)

// BookmarkPayload is the decoded payload of a bookmark record.
//
// A deleted payload is a tombstone: it carries only ID and the deletion flag,
// every other field is empty. Every non-deleted payload must reference a
// parent folder.
type BookmarkPayload struct {
	ID         string       `json:"id"`
	Type       BookmarkType `json:"type"`
	Deleted    bool         `json:"deleted,omitempty"`
	ParentID   string       `json:"parentid,omitempty"`
	ParentName string       `json:"parentName,omitempty"`
	Title      string       `json:"title,omitempty"`
	URI        string       `json:"bmkUri,omitempty"`
	Keyword    string       `json:"keyword,omitempty"`

	// Children lists the ordered child GUIDs of a folder or livemark.
	Children []string `json:"children,omitempty"`
}

// Validate checks the structural invariants of the payload.
func (p *BookmarkPayload) Validate() error {
	if p.ID == "" {
		return errors.New("bookmark payload has no id")
	}

	if p.Deleted {
		// Tombstones carry nothing else worth checking.
		return nil
	}

	if !p.Type.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownBookmarkType, p.Type)
	}

	if p.ParentID == "" {
		return fmt.Errorf("%w: %s", ErrMissingParent, p.ID)
	}

	if (p.Type == BookmarkTypeBookmark || p.Type == BookmarkTypeQuery) && p.URI == "" {
		return fmt.Errorf("%w: %s", ErrMissingURI, p.ID)
	}

	return nil
}

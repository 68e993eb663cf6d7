// SPDX-License-Identifier: Apache-2.0

package models

import "fmt"

// MirrorItem is the storage-ready projection of one bookmark record. It is
// what the local mirror table receives from an apply step.
type MirrorItem struct {
	GUID           string
	Type           BookmarkType
	ServerModified Timestamp
	IsDeleted      bool
	ParentID       string
	Title          string
	URI            string
	Keyword        string
	Children       []string
}

// NewMirrorItem projects a decoded payload and its server modification
// timestamp into a MirrorItem. The projection is a pure function of its two
// arguments; it never consults external state.
//
// Returns an error when the payload fails validation — callers treat that as
// "this record cannot be mirrored", skip it, and continue with the rest of
// the batch.
func NewMirrorItem(payload BookmarkPayload, modified Timestamp) (MirrorItem, error) {
	if err := payload.Validate(); err != nil {
		return MirrorItem{}, fmt.Errorf("project payload %s: %w", payload.ID, err)
	}

	if payload.Deleted {
		return MirrorItem{
			GUID:           payload.ID,
			ServerModified: modified,
			IsDeleted:      true,
		}, nil
	}

	item := MirrorItem{
		GUID:           payload.ID,
		Type:           payload.Type,
		ServerModified: modified,
		ParentID:       payload.ParentID,
		Title:          payload.Title,
		URI:            payload.URI,
		Keyword:        payload.Keyword,
	}

	if len(payload.Children) > 0 {
		item.Children = append([]string(nil), payload.Children...)
	}

	return item, nil
}

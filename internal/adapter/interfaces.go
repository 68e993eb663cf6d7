// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the remote collection storage service.
//
// The primary abstraction is [CollectionClient], which decouples the sync
// engine from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPCollectionClient]) speaking the limit/offset pagination protocol.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling; [ErrPreconditionFailed] (HTTP 412) is the signal the
// downloader relies on for conflict detection.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collection_client_mock.go -package=mock

// CollectionClient defines transport-agnostic access to the remote storage
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Authentication itself (token acquisition, refresh) belongs to the embedding
// application; the client only forwards the token it is given.
type CollectionClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// InfoCollections fetches the server's per-collection modification
	// summary. The synchronizer consults it before touching any collection.
	InfoCollections(ctx context.Context) (models.ServerInfo, error)

	// FetchSince performs exactly one page fetch against collection:
	// full records modified after since, newest first, at most limit of
	// them, continuing from offset when offset is non-empty.
	//
	// Returns [ErrPreconditionFailed] (wrapped) when the server reports that
	// a concurrent mutation invalidated the offset; any other non-2xx
	// response maps to the corresponding sentinel error.
	FetchSince(ctx context.Context, collection string, since models.Timestamp, limit int, offset string) (*models.FetchResponse, error)
}

// Package crypto provides the record payload codec. Records arrive from the
// server with an opaque payload; depending on the account configuration that
// payload is either plain JSON or an encrypted blob. The codec hides the
// difference from the rest of the engine.
package crypto

import (
	"encoding/json"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec converts between a record's opaque wire payload and its typed
// bookmark payload.
//
// DecodePayload failures on a single record are non-fatal to a batch: the
// orchestrator logs and skips the record, because one undecodable payload
// must never abort a download run.
type Codec interface {
	// DecodePayload opens the record's payload and decodes it into a
	// bookmark payload. Implementations fill in the payload ID from the
	// envelope when the payload itself omits it.
	DecodePayload(rec models.Record) (models.BookmarkPayload, error)

	// EncodePayload is the inverse of DecodePayload. The engine itself never
	// uploads, but tests and fixtures need to produce wire payloads the
	// codec accepts.
	EncodePayload(payload models.BookmarkPayload) (json.RawMessage, error)
}

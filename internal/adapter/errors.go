package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers use
// [errors.Is] for transport-agnostic handling.
var (
	// ErrPreconditionFailed corresponds to HTTP 412. The server mutated the
	// collection while a paginated fetch sequence was in flight, which
	// invalidates the continuation offset. This is the one wire-level signal
	// the downloader specifically pattern-matches on.
	ErrPreconditionFailed = errors.New("precondition failed: collection changed mid-sequence")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

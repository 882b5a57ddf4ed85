package adapter

import "errors"

// Error taxonomy of the transport layer. Every error returned by this
// package wraps exactly one of ErrTransport, ErrProtocol or ErrChannel;
// status failures additionally wrap one of the status sentinels below.
var (
	// ErrTransport covers network failures and non-success HTTP statuses.
	ErrTransport = errors.New("transport error")
	// ErrProtocol covers malformed or incomplete response bodies.
	ErrProtocol = errors.New("protocol error")
	// ErrChannel covers live update channels that cannot be opened or that
	// break while streaming.
	ErrChannel = errors.New("channel error")
)

// Status sentinels, mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	// ErrUnexpectedStatus is returned when an endpoint answers with a 2xx
	// status other than the one its contract requires.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

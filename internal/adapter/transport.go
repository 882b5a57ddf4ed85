package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/code-historian-client/models"
)

// Request describes one backend call relative to the configured base URL.
type Request struct {
	Method string
	// Path may contain {name} placeholders filled from PathParams.
	Path        string
	PathParams  map[string]string
	QueryParams map[string]string
	Headers     map[string]string
	// Body is serialized as JSON when non-nil.
	Body       any
	Credential models.Credential
}

// Response is the raw outcome of a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Outcome is the single value delivered by a future returned from the
// asynchronous adapter methods.
type Outcome[T any] struct {
	Value T
	Err   error
}

// async runs fn on its own goroutine and delivers its result through a
// buffered channel, so the goroutine never leaks even when nobody reads.
// A panic inside fn is converted into an error wrapping [ErrTransport].
func async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				out <- Outcome[T]{Err: fmt.Errorf("%w: panic: %v", ErrTransport, r)}
			}
		}()

		v, err := fn(ctx)
		out <- Outcome[T]{Value: v, Err: err}
	}()

	return out
}

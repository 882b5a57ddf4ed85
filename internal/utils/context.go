// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// identifier generation and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// LaunchIDCtxKey is the key used to store the client-side launch identifier
// in the context. Requests issued on behalf of a launch log it so a single
// launch can be followed across the adapter and service layers.
var LaunchIDCtxKey = contextKey("launchID")

// WithLaunchID returns a copy of ctx carrying launchID.
func WithLaunchID(ctx context.Context, launchID string) context.Context {
	return context.WithValue(ctx, LaunchIDCtxKey, launchID)
}

// GetLaunchIDFromContext retrieves the launch identifier from the context.
//
// Returns ok == false when the value is missing, has an unexpected type or
// is empty.
//
// Example usage:
//
//	launchID, ok := utils.GetLaunchIDFromContext(ctx)
//	if !ok {
//	    // request not issued by a launch
//	}
func GetLaunchIDFromContext(ctx context.Context) (string, bool) {
	launchID, ok := ctx.Value(LaunchIDCtxKey).(string)
	if !ok || launchID == "" {
		return "", false
	}
	return launchID, true
}

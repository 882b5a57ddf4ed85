// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/code-historian-client/internal/service"
	"github.com/MKhiriev/code-historian-client/internal/sink"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Frontend presents a launch to the user. It receives updates as a
// [sink.Display] and the outcome as a [service.StatusReporter].
type Frontend interface {
	sink.Display
	service.StatusReporter

	// Run blocks until the launch ends, the user quits or ctx is
	// cancelled. It returns tui.ErrUserQuit or ErrInterrupted when the
	// launch should be abandoned.
	Run(ctx context.Context) error
}

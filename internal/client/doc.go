// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// It wires configuration, the transport adapters, the launch services and a
// frontend (the interactive terminal view or plain console lines) into a
// single process lifecycle: start one analysis and follow it to the end.
package client

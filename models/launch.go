// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LaunchState describes where a single analysis launch is in its lifecycle.
//
//	pending -> starting -> running -> completed | failed | cancelled
//
// A launch may also move from pending or starting directly to failed or
// cancelled.
type LaunchState string

const (
	LaunchPending   LaunchState = "pending"
	LaunchStarting  LaunchState = "starting"
	LaunchRunning   LaunchState = "running"
	LaunchCompleted LaunchState = "completed"
	LaunchFailed    LaunchState = "failed"
	LaunchCancelled LaunchState = "cancelled"
)

// IsFinal reports whether no further transitions are possible.
func (s LaunchState) IsFinal() bool {
	switch s {
	case LaunchCompleted, LaunchFailed, LaunchCancelled:
		return true
	default:
		return false
	}
}

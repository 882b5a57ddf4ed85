package client

import "errors"

var (
	// ErrInterrupted is returned when the process was asked to stop before
	// the launch finished.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoProjectPath is returned when neither a flag, the environment
	// nor the config file names a project.
	ErrNoProjectPath = errors.New("no project path given")
	// ErrNoQuery is returned by NewReport when no report was selected.
	ErrNoQuery = errors.New("no report selected")
)

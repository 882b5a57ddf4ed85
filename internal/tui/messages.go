package tui

type progressMsg struct {
	percent float64
}

type metricsMsg struct {
	document string
}

type startedMsg struct {
	sessionID string
}

type completedMsg struct{}

type failedMsg struct {
	message string
}

type copiedMsg struct {
	err error
}

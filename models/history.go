// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileHistory is the change history of a single file as reported by
// GET /history/file.
type FileHistory struct {
	FilePath string       `json:"filePath"`
	Commits  []FileCommit `json:"commits"`
}

// FileCommit is one commit touching a file.
type FileCommit struct {
	Hash      string `json:"hash"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Message   string `json:"message"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// ProjectMetrics is the repository-wide overview returned by
// GET /metrics/project.
type ProjectMetrics struct {
	TotalFiles        int       `json:"totalFiles"`
	TotalCommits      int       `json:"totalCommits"`
	TotalAuthors      int       `json:"totalAuthors"`
	AvgCommitsPerFile float64   `json:"avgCommitsPerFile"`
	AvgAuthorsPerFile float64   `json:"avgAuthorsPerFile"`
	Hotspots          []Hotspot `json:"hotspots"`
}

// Hotspot is a frequently changed file.
type Hotspot struct {
	FilePath string  `json:"filePath"`
	Score    float64 `json:"score"`
	Changes  int     `json:"changes"`
	Authors  int     `json:"authors"`
}

// MetricsSummary is the flat list returned by GET /metrics/summary.
type MetricsSummary struct {
	Metrics []SummaryMetric `json:"metrics"`
}

// SummaryMetric is one named value of a [MetricsSummary].
type SummaryMetric struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	HasDetails bool    `json:"hasDetails,omitempty"`
}

// Package config provides configuration loading, merging, and validation
// facilities for the historian client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (prefixed with HISTORIAN_)
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset afterwards receive local-first defaults: the backend is
// assumed at http://localhost:3000/api and no credential is sent.
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config

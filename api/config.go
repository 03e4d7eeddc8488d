// Package api provides the HTTP inference server for a trained name classifier.
package api

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// RunID identifies the trained run being served. Informational only.
	RunID string
}

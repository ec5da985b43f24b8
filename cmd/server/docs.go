package main

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed openapi.yaml
var openAPISpec []byte

// serveAPIDocs serves the static OpenAPI schema. The file is embedded at
// build time and returned unmodified.
func serveAPIDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if _, err := w.Write(openAPISpec); err != nil {
		slog.Error("failed to write API docs response", "error", err)
	}
}

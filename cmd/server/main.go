// Package main implements the entry point for the goop API server,
// an in-memory educational record store for classroom use: accounts,
// learning materials, cognitive tests, and student projects.
package main

import (
	"context"
	"log"
)

// main is the entry point for the goop-api server. It initializes
// configuration, logging, the record store, and the application services,
// then starts the HTTP server and blocks until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

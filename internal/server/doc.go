// Package server runs the HTTP transport of the notes backend.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// and the background workers that live as long as the server does.
package server

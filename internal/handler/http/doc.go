// Package http implements the REST transport of the notes server.
//
// It exposes route wiring, request handlers, and middleware. Token
// authentication, request tracing, access logging, and response compression
// are handled here before requests are delegated to the service layer. Every
// failure is rendered as a JSON [models.ErrorResponse].
package http

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API and the static application shell. Cross-cutting concerns such as request
// tracing, access logging, and response compression are handled in this
// package before requests are delegated to the service layer. Non-API paths
// fall back to the single-page application entry point so client-side routing
// keeps working on a hard reload.
package http

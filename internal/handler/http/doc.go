// Package http implements the HTTP transport layer of the osphor server.
//
// It wires the chi router, request handlers and middleware. Request tracing,
// access logging, metrics, compression and bearer authentication are handled
// here before requests are delegated to the service layer.
package http

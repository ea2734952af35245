// Package api handles incoming HTTP requests, request decoding and response
// formatting. It acts as an adapter between external clients and the
// generation service, translating service errors into HTTP status codes and
// user-facing messages exactly once, at the boundary.
package api

// Package client is a typed HTTP client for the notes REST API.
//
// Failures carry the server's status and message as *APIError. Common
// conditions unwrap to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound.
package client

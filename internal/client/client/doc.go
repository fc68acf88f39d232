// Package client talks to the dailylog auth service over gRPC.
//
// GRPCClient keeps the current access and refresh tokens in memory, attaches
// the access token to every call and, when the server answers that it has
// expired, refreshes the pair once and retries. gRPC status codes are mapped
// to the sentinel errors in errors.go so callers can use errors.Is.
package client

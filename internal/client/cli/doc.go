// Package cli provides the interactive dailylog command-line client.
//
// It wires configuration and the gRPC client into a small REPL that walks a
// user through the account lifecycle: register, verify the emailed code,
// log in, rotate tokens, log out and reset the secret.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

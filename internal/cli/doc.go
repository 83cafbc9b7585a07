// Package cli provides the interactive Health App command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL with
// a background connectivity watcher. Typical flow: prompt for credentials,
// then execute user commands against the backend.
//
// Key features:
//   - Register / Login / Logout
//   - View and edit the user profile
//   - Browse courses, modules and groups
//   - Posts, quizzes and progress tracking (pending backend support)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli

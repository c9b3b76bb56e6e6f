// Package cli provides the interactive slambook command-line client.
//
// It wires configuration, the local SQLite store, the remote API services,
// and an interactive REPL. Typical flow: log in (or switch to local mode),
// then browse, filter, and edit slam-book entries.
//
// Key features:
//   - Signup / Login / Logout with a persisted session
//   - Add / Edit / Delete / Favorite entries
//   - Search, tag and favorites filtering, five sort modes
//   - Statistics, JSON export and import
//   - A legacy local mode backed by the embedded database
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

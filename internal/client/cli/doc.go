// Package cli provides the interactive onboarding command-line client.
//
// It wires configuration, the local draft database, the API services, and an
// interactive REPL that drives the registration wizard. Typical flow: start
// the REPL, run "register", and walk the three wizard steps (personal
// details, workspace, about you). A partially filled wizard survives
// restarts: each step restores its saved values from the local database when
// it is opened again.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, runREPL, and the step runners in register.go for details.
package cli

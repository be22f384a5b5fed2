// Package cli defines the Cobra command tree for the upmgen CLI. Each file
// registers one top-level command with the root command. Commands only parse
// flags, talk to the user, and format output; generation and validation live
// in the scaffold and manifest packages.
package cli

// Package cli implements the command-line interface for hltv-players.
//
// The root command resolves a config.Config from defaults, an optional .env file, the
// environment and flags, runs the extraction pipeline once and prints a text or JSON
// summary of the run.
package cli

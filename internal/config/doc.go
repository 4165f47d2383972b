// Package config holds the run configuration for hltv-players.
//
// A Config names the stats endpoint, the User-Agent sent with the request, the output
// path and the marker class of the table to extract. Values come from built-in
// defaults, an optional .env file, the process environment and finally CLI flags.
package config

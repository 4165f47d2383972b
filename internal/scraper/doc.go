// Package scraper fetches the HLTV player statistics page and extracts its stats table.
//
// Fetch issues a single GET with a browser-like User-Agent and returns the body whatever
// the status code. FindTable locates the first table carrying the marker class and
// ExtractRows turns its data rows into trimmed cell text, skipping the header row and
// dropping rows without cells.
package scraper

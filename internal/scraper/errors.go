package scraper

import "errors"

// ErrTableNotFound is returned when the markup has no table with the marker class.
var ErrTableNotFound = errors.New("stats table not found")

// Package storage writes extracted player rows to a CSV file.
//
// The output file is created or truncated on every write and always starts with the
// fixed header record. The containing directory must already exist; when it does not,
// writes fail with ErrPathUnavailable and nothing is created.
package storage

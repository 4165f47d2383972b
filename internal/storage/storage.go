package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pfrederiksen/hltv-players/internal/scraper"
)

// Header is the first record of every output file.
var Header = []string{"Player", "Team", "Maps", "K/D Diff", "K/D", "Rating 2.0"}

// ErrPathUnavailable is returned when the output directory does not exist.
var ErrPathUnavailable = errors.New("output path unavailable")

// Storage handles persistence of extracted rows
type Storage struct {
	path string
}

// New creates a Storage writing to path.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the output file path.
func (s *Storage) Path() string {
	return s.path
}

// WriteRows replaces the output file with Header followed by rows. Rows are written
// in order with no column-count reconciliation.
func (s *Storage) WriteRows(rows []scraper.Row) error {
	if err := s.checkDir(); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("%w: %s: %v", ErrPathUnavailable, s.path, err)
		}
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := Encode(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.path, err)
	}
	return nil
}

// emptyRecord is a single empty field. encoding/csv renders it as a blank line,
// which readers skip, so it is written quoted instead.
const emptyRecord = "\"\"\n"

// Encode writes Header and rows as comma-separated records with LF line endings and
// no trailing blank line.
func Encode(w io.Writer, rows []scraper.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if len(row) == 1 && row[0] == "" {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("writing row %d: %w", i, err)
			}
			if _, err := io.WriteString(w, emptyRecord); err != nil {
				return fmt.Errorf("writing row %d: %w", i, err)
			}
			continue
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// checkDir verifies the directory that will hold the output file.
func (s *Storage) checkDir() error {
	dir := filepath.Dir(s.path)

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: directory %s does not exist", ErrPathUnavailable, dir)
		}
		return fmt.Errorf("checking output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPathUnavailable, dir)
	}
	return nil
}

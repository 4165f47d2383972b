package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/hltv-players/internal/pipeline"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *pipeline.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *pipeline.Result) error {
	noun := "rows"
	if result.Rows == 1 {
		noun = "row"
	}
	if _, err := fmt.Fprintf(w, "Saved %s (%d %s)\n", result.Output, result.Rows, noun); err != nil {
		return err
	}
	if result.DroppedRows > 0 {
		_, err := fmt.Fprintf(w, "Skipped %d empty rows\n", result.DroppedRows)
		return err
	}
	return nil
}

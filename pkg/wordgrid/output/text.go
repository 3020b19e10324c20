// Package output renders grids and matches.
package output

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// FormatMatch renders m as "<word> at <row>, <col>, <direction>" with
// two-digit coordinates.
func FormatMatch(m models.Match) string {
	return fmt.Sprintf("%s at %02d, %02d, %s", m.Word, m.Row, m.Col, m.Direction)
}

// WriteText writes one line per match as matches are produced.
// It returns the number of matches written.
func WriteText(w io.Writer, matches iter.Seq[models.Match]) (int, error) {
	n := 0
	for m := range matches {
		if _, err := fmt.Fprintln(w, FormatMatch(m)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// WriteGrid writes the grid one row per line with letters space separated.
func WriteGrid(w io.Writer, grid *models.Grid) error {
	for _, row := range grid.Rows {
		letters := make([]string, len(row))
		for i, r := range row {
			letters[i] = string(r)
		}
		if _, err := fmt.Fprintln(w, strings.Join(letters, " ")); err != nil {
			return err
		}
	}
	return nil
}

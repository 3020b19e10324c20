package wordgrid

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// Validate checks that opts can be applied to grid.
func Validate(grid *models.Grid, opts Options) error {
	if grid == nil || grid.NRows() == 0 || grid.NCols() == 0 {
		return &GridError{Row: -1}
	}
	if ok, row := grid.IsRectangular(); !ok {
		return &GridError{Row: row, Want: grid.NCols(), Got: len(grid.Rows[row])}
	}
	if opts.MinLength < 1 || opts.MinLength > grid.MaxDimension() {
		return &LengthError{MinLength: opts.MinLength, Rows: grid.NRows(), Cols: grid.NCols()}
	}
	return nil
}

// Search yields every match in grid. Each candidate is tested forwards and
// backwards against words after lower-casing, so a candidate can produce two
// matches. Overlapping finds are not merged.
//
// Search assumes Validate(grid, opts) returned nil.
func Search(grid *models.Grid, words models.WordSet, opts Options) iter.Seq[models.Match] {
	limit := opts.LengthLimit(grid.MaxDimension())
	slog.Debug("Searching grid.",
		"rows", grid.NRows(), "cols", grid.NCols(),
		"min_length", opts.MinLength, "length_limit", limit, "words", words.Len())

	return func(yield func(models.Match) bool) {
		for c := range Scan(grid, opts.MinLength, limit) {
			if words.Contains(strings.ToLower(c.Text)) {
				if !yield(c.Match()) {
					return
				}
			}

			rev := c.Reverse()
			if words.Contains(strings.ToLower(rev.Text)) {
				if !yield(rev.Match()) {
					return
				}
			}
		}
	}
}

// Find validates its inputs and returns all matches in canonical order.
func Find(grid *models.Grid, words models.WordSet, opts Options) ([]models.Match, error) {
	if err := Validate(grid, opts); err != nil {
		return nil, err
	}
	return slices.Collect(Search(grid, words, opts)), nil
}

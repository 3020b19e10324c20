package wordgrid

import (
	"iter"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// Scan enumerates every candidate run of length in [minLen, limit) along the
// four forward axes. Order is by length, then row, then column, then
// across, down, down right, down left. Reverse readings are not produced
// here; see Candidate.Reverse.
func Scan(grid *models.Grid, minLen, limit int) iter.Seq[models.Candidate] {
	nrows, ncols := grid.NRows(), grid.NCols()

	return func(yield func(models.Candidate) bool) {
		emit := func(row, col int, d models.Direction, n int) bool {
			return yield(models.Candidate{
				Text:      grid.Line(row, col, d, n),
				Row:       row,
				Col:       col,
				Direction: d,
			})
		}

		for strlen := minLen; strlen < limit; strlen++ {
			for row := 0; row < nrows; row++ {
				for col := 0; col < ncols; col++ {
					if col+strlen <= ncols {
						if !emit(row, col, models.Across, strlen) {
							return
						}
					}

					// Not enough rows left for any downward run.
					if row+strlen > nrows {
						continue
					}

					if !emit(row, col, models.Down, strlen) {
						return
					}
					if col+strlen <= ncols {
						if !emit(row, col, models.DownRight, strlen) {
							return
						}
					}
					if col+1 >= strlen {
						if !emit(row, col, models.DownLeft, strlen) {
							return
						}
					}
				}
			}
		}
	}
}

// Package models defines data structures for word grid searches.
package models

import "strings"

// Grid is a rectangular array of upper-case characters being searched.
// Rows are indexed from 0 at the top, columns from 0 at the left.
type Grid struct {
	// Rows holds one slice of characters per grid row, in source order.
	Rows [][]rune
}

// NewGrid builds a Grid from row strings.
func NewGrid(rows ...string) *Grid {
	g := &Grid{Rows: make([][]rune, 0, len(rows))}
	for _, row := range rows {
		g.Rows = append(g.Rows, []rune(row))
	}
	return g
}

// NRows returns the number of rows.
func (g *Grid) NRows() int {
	return len(g.Rows)
}

// NCols returns the number of columns, taken from the first row.
// Callers should check IsRectangular before trusting it.
func (g *Grid) NCols() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// MaxDimension returns the larger of NRows and NCols.
func (g *Grid) MaxDimension() int {
	return max(g.NRows(), g.NCols())
}

// IsRectangular reports whether every row has the same length.
// It returns the index of the first row that differs, or -1.
func (g *Grid) IsRectangular() (bool, int) {
	ncols := g.NCols()
	for i, row := range g.Rows {
		if len(row) != ncols {
			return false, i
		}
	}
	return true, -1
}

// Line reads n characters starting at (row, col) stepping in direction d.
// The caller guarantees the whole run lies inside the grid.
func (g *Grid) Line(row, col int, d Direction, n int) string {
	dr, dc := d.Step()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteRune(g.Rows[row+i*dr][col+i*dc])
	}
	return sb.String()
}

// Lines returns the rows as strings.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		lines[i] = string(row)
	}
	return lines
}

// Package parser reads grids, word lists and puzzle files.
package parser

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// maxLineSize bounds a single grid row or word list line.
const maxLineSize = 16 * 1024 * 1024

// NormalizeRow upper-cases s and drops every character that is not a letter
// or a number, so "a b-c" becomes "ABC".
func NormalizeRow(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return -1
	}, strings.ToUpper(s))
}

// ReadTextGrid reads one grid row per line. Lines that hold no letters or
// numbers are skipped.
func ReadTextGrid(r io.Reader) (*models.Grid, error) {
	grid := &models.Grid{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		row := NormalizeRow(scanner.Text())
		if row == "" {
			continue
		}
		grid.Rows = append(grid.Rows, []rune(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

// LoadTextGrid reads a grid from a text file.
func LoadTextGrid(path string) (*models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTextGrid(f)
}

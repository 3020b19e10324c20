package wordgrid

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/parser"
)

// SheetOptions selects where a grid lives inside a workbook.
type SheetOptions struct {
	// Sheet is the worksheet name; empty means the first sheet.
	Sheet string
	// Range is an A1 range such as "B2:K11"; empty means all non-empty cells.
	Range string
}

// DictFiles returns the named word lists a puzzle file can refer to.
func DictFiles() map[string]string {
	return map[string]string{
		"default": DefaultDictFile,
		"rare":    RareDictFile,
	}
}

// IsWorkbook reports whether path names an Excel workbook.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// checkExists maps a missing file to ErrFileNotFound.
func checkExists(path, component string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return NewLoadError(path, component, ErrFileNotFound)
	}
	return nil
}

// LoadGrid reads a grid from a text file or, for .xlsx paths, a workbook.
func LoadGrid(path string, sheet SheetOptions) (*models.Grid, error) {
	if err := checkExists(path, "grid"); err != nil {
		return nil, err
	}

	var (
		grid *models.Grid
		err  error
	)
	if IsWorkbook(path) {
		grid, err = parser.LoadWorkbookGrid(path, sheet.Sheet, sheet.Range)
	} else {
		grid, err = parser.LoadTextGrid(path)
	}
	if err != nil {
		return nil, NewLoadError(path, "grid", err)
	}

	slog.Debug("Grid loaded.", "path", path, "rows", grid.NRows(), "cols", grid.NCols())
	return grid, nil
}

// LoadWords reads a word list.
func LoadWords(path string) (models.WordSet, error) {
	if err := checkExists(path, "dictionary"); err != nil {
		return nil, err
	}

	words, err := parser.LoadWords(path)
	if err != nil {
		return nil, NewLoadError(path, "dictionary", err)
	}

	slog.Debug("Dictionary loaded.", "path", path, "words", words.Len())
	return words, nil
}

// LoadPuzzle reads a puzzle file.
func LoadPuzzle(path string) (*models.Puzzle, error) {
	if err := checkExists(path, "puzzle"); err != nil {
		return nil, err
	}

	puzzle, err := parser.LoadPuzzle(path, DictFiles())
	if err != nil {
		return nil, NewLoadError(path, "puzzle", err)
	}
	return puzzle, nil
}

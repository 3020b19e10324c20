package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/xuri/excelize/v2"
)

// ErrBlankCell indicates an empty cell between letters of a grid row.
var ErrBlankCell = errors.New("blank cell inside grid")

// ExtractGrid reads a grid from a worksheet. Each cell contributes its
// normalised text, so a cell may hold one letter or a whole row. When area
// is nil the bounding box of non-empty cells is used. Rows with no letters
// are skipped; a row with letters must fill every cell of the area.
func ExtractGrid(f *excelize.File, sheetName string, area *models.Area) (*models.Grid, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if area == nil {
		area = findDataBounds(rows)
		if area == nil {
			return &models.Grid{}, nil
		}
	}

	grid := &models.Grid{}
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var (
			letters []rune
			blank   string
		)
		for colIdx := area.C1 - 1; colIdx < area.C2; colIdx++ {
			var text string
			if colIdx < len(row) {
				text = NormalizeRow(row[colIdx])
			}
			if text == "" {
				if blank == "" {
					blank, _ = excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				}
				continue
			}
			letters = append(letters, []rune(text)...)
		}
		if len(letters) == 0 {
			continue
		}
		if blank != "" {
			return nil, fmt.Errorf("%w: %s!%s", ErrBlankCell, sheetName, blank)
		}
		grid.Rows = append(grid.Rows, letters)
	}

	return grid, nil
}

// LoadWorkbookGrid opens an xlsx file and reads a grid from one sheet.
// rangeRef is an A1 range such as "B2:K11", or empty for the whole sheet.
func LoadWorkbookGrid(path, sheetName, rangeRef string) (*models.Grid, error) {
	var area *models.Area
	if rangeRef != "" {
		a, err := ParseRange(rangeRef)
		if err != nil {
			return nil, err
		}
		area = a
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractGrid(f, sheetName, area)
}

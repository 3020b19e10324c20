package output

import (
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/xuri/excelize/v2"
)

// MatchesSheet is the worksheet name used by WriteWorkbook.
const MatchesSheet = "Matches"

var workbookHeader = []interface{}{"Word", "Row", "Col", "Direction", "Heading"}

// NewWorkbook builds a workbook with one row per match below a header row.
func NewWorkbook(matches []models.Match) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename the default sheet rather than adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), MatchesSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(MatchesSheet, "A1", &workbookHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, m := range matches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{m.Word, m.Row, m.Col, m.Direction.String(), m.Direction.Heading()}
		if err := f.SetSheetRow(MatchesSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook saves matches to an xlsx file at path.
func WriteWorkbook(path string, matches []models.Match) error {
	f, err := NewWorkbook(matches)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

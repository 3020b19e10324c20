package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range such as "B2:K11" or "$B$2:$K$11". A sheet
// prefix ("Puzzle!B2:K11") is ignored.
func ParseRange(ref string) (*models.Area, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range %q: expected START:END", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	return &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

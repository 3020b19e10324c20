package parser

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/xuri/excelize/v2"
)

// saveWorkbook writes cell values to Sheet1 of a new workbook.
func saveWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "grid.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

var letterCells = map[string]interface{}{
	"B2": "c", "C2": "A", "D2": "T",
	"B3": "A", "C3": "B", "D3": "C",
	"B4": "T", "C4": "O", "D4": "P",
}

func TestLoadWorkbookGrid(t *testing.T) {
	path := saveWorkbook(t, letterCells)

	grid, err := LoadWorkbookGrid(path, "", "")
	if err != nil {
		t.Fatalf("LoadWorkbookGrid failed: %v", err)
	}

	lines := grid.Lines()
	expected := []string{"CAT", "ABC", "TOP"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d rows, got %d (%v)", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Row %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestLoadWorkbookGrid_Range(t *testing.T) {
	cells := map[string]interface{}{"F9": "title"}
	for k, v := range letterCells {
		cells[k] = v
	}
	path := saveWorkbook(t, cells)

	grid, err := LoadWorkbookGrid(path, "Sheet1", "B3:D4")
	if err != nil {
		t.Fatalf("LoadWorkbookGrid failed: %v", err)
	}

	lines := grid.Lines()
	if len(lines) != 2 || lines[0] != "ABC" || lines[1] != "TOP" {
		t.Errorf("Expected [ABC TOP], got %v", lines)
	}
}

func TestLoadWorkbookGrid_RowPerCell(t *testing.T) {
	path := saveWorkbook(t, map[string]interface{}{
		"A1": "d o g",
		"A2": "OWL",
	})

	grid, err := LoadWorkbookGrid(path, "", "")
	if err != nil {
		t.Fatalf("LoadWorkbookGrid failed: %v", err)
	}

	lines := grid.Lines()
	if len(lines) != 2 || lines[0] != "DOG" || lines[1] != "OWL" {
		t.Errorf("Expected [DOG OWL], got %v", lines)
	}
}

func TestLoadWorkbookGrid_Errors(t *testing.T) {
	path := saveWorkbook(t, letterCells)

	if _, err := LoadWorkbookGrid(path, "NoSuchSheet", ""); err == nil {
		t.Error("Expected error for unknown sheet")
	}
	if _, err := LoadWorkbookGrid(path, "", "B2"); err == nil {
		t.Error("Expected error for malformed range")
	}
}

func TestLoadWorkbookGrid_BlankCell(t *testing.T) {
	// One blank per row in B2:D4 must not shift the remaining letters left.
	path := saveWorkbook(t, map[string]interface{}{
		"C2": "O", "D2": "X",
		"B3": "Q", "D3": "G",
		"B4": "D", "C4": "Z",
	})

	grid, err := LoadWorkbookGrid(path, "", "B2:D4")
	if err == nil {
		t.Fatalf("Expected error, got grid %v", grid.Lines())
	}
	if !errors.Is(err, ErrBlankCell) {
		t.Errorf("Expected ErrBlankCell, got %v", err)
	}
	if !strings.Contains(err.Error(), "Sheet1!B2") {
		t.Errorf("Error %q should name cell Sheet1!B2", err.Error())
	}
}

func TestLoadWorkbookGrid_TrailingBlankCell(t *testing.T) {
	// GetRows drops trailing empty cells; D3 is still inside the area.
	path := saveWorkbook(t, map[string]interface{}{
		"B2": "C", "C2": "A", "D2": "T",
		"B3": "A", "C3": "B",
	})

	_, err := LoadWorkbookGrid(path, "", "B2:D3")
	if !errors.Is(err, ErrBlankCell) {
		t.Fatalf("Expected ErrBlankCell, got %v", err)
	}
	if !strings.Contains(err.Error(), "Sheet1!D3") {
		t.Errorf("Error %q should name cell Sheet1!D3", err.Error())
	}
}

func TestLoadWorkbookGrid_BlankRowSkipped(t *testing.T) {
	path := saveWorkbook(t, map[string]interface{}{
		"A1": "D", "B1": "O", "C1": "G",
		"A3": "O", "B3": "W", "C3": "L",
	})

	grid, err := LoadWorkbookGrid(path, "", "A1:C3")
	if err != nil {
		t.Fatalf("LoadWorkbookGrid failed: %v", err)
	}

	lines := grid.Lines()
	if len(lines) != 2 || lines[0] != "DOG" || lines[1] != "OWL" {
		t.Errorf("Expected [DOG OWL], got %v", lines)
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", " "},
		{"", "x", "", "y"},
		{"", "", "z"},
	}

	area := findDataBounds(rows)
	expected := models.Area{R1: 3, C1: 2, R2: 4, C2: 4}
	if area == nil || *area != expected {
		t.Errorf("findDataBounds() = %+v, expected %+v", area, expected)
	}

	if area := findDataBounds([][]string{{"", "-"}}); area != nil {
		t.Errorf("findDataBounds() = %+v, expected nil", area)
	}
}

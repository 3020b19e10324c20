package models

// Puzzle describes a search read from a puzzle file. Nil or empty fields
// were not set in the file.
type Puzzle struct {
	// GridFile is the path to the grid source.
	GridFile string
	// MinLength is the shortest word length reported.
	MinLength *int
	// DictFile is the path to the word list.
	DictFile string
	// Sheet names the worksheet for workbook grids.
	Sheet string
	// Range restricts a workbook grid to an A1 range such as "B2:K11".
	Range string
	// ExclusiveMax selects the exclusive length bound.
	ExclusiveMax *bool
}

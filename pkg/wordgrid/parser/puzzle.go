package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/zclconf/go-cty/cty"
)

// hclPuzzleFile is the top-level structure of a puzzle file.
type hclPuzzleFile struct {
	Grid         *string `hcl:"grid,optional"`
	MinLength    *int    `hcl:"min_length,optional"`
	Dictionary   *string `hcl:"dictionary,optional"`
	Sheet        *string `hcl:"sheet,optional"`
	Range        *string `hcl:"range,optional"`
	ExclusiveMax *bool   `hcl:"exclusive_max,optional"`
}

// puzzleEvalContext exposes the named word lists as dict.<name>.
func puzzleEvalContext(dicts map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(dicts))
	for name, path := range dicts {
		vals[name] = cty.StringVal(path)
	}

	dict := cty.EmptyObjectVal
	if len(vals) > 0 {
		dict = cty.ObjectVal(vals)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"dict": dict},
	}
}

// ParsePuzzle decodes puzzle file source. dicts names the word lists a file
// may refer to as dict.<name>. Paths are returned as written.
func ParsePuzzle(src []byte, filename string, dicts map[string]string) (*models.Puzzle, error) {
	p := hclparse.NewParser()
	file, diags := p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse puzzle file %s: %w", filename, diags)
	}

	var parsed hclPuzzleFile
	diags = gohcl.DecodeBody(file.Body, puzzleEvalContext(dicts), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode puzzle file %s: %w", filename, diags)
	}

	puzzle := &models.Puzzle{
		MinLength:    parsed.MinLength,
		ExclusiveMax: parsed.ExclusiveMax,
	}
	if parsed.Grid != nil {
		puzzle.GridFile = *parsed.Grid
	}
	if parsed.Dictionary != nil {
		puzzle.DictFile = *parsed.Dictionary
	}
	if parsed.Sheet != nil {
		puzzle.Sheet = *parsed.Sheet
	}
	if parsed.Range != nil {
		puzzle.Range = *parsed.Range
	}
	return puzzle, nil
}

// LoadPuzzle reads a puzzle file. Relative grid and dictionary paths are
// resolved against the puzzle file's directory.
func LoadPuzzle(path string, dicts map[string]string) (*models.Puzzle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	puzzle, err := ParsePuzzle(src, path, dicts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	puzzle.GridFile = resolvePath(dir, puzzle.GridFile)
	puzzle.DictFile = resolvePath(dir, puzzle.DictFile)
	return puzzle, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

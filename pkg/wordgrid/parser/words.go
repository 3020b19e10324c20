package parser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
)

// ReadWords reads a newline-delimited word list. Each line is trimmed and
// lower-cased; blank lines are ignored.
func ReadWords(r io.Reader) (models.WordSet, error) {
	words := models.NewWordSet()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadWords reads a word list file.
func LoadWords(path string) (models.WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadWords(f)
}

// Package wordgrid finds dictionary words hidden in a rectangular letter grid.
package wordgrid

const (
	// DefaultDictFile is the word list used when none is given.
	DefaultDictFile = "/usr/share/dict/american-english-huge"
	// RareDictFile is the larger word list that admits rarer words.
	RareDictFile = "/usr/share/dict/american-english-insane"
)

// Options configures a search.
type Options struct {
	// MinLength is the shortest word length reported.
	MinLength int
	// ExclusiveMax stops one short of the grid's larger dimension, so a word
	// spanning the whole grid is only found along a shorter side that ties it.
	// By default words as long as the larger dimension are tested.
	ExclusiveMax bool
}

// DefaultOptions returns default search options.
func DefaultOptions() Options {
	return Options{
		MinLength: 3,
	}
}

// LengthLimit returns the exclusive upper bound on candidate length for a
// grid whose larger dimension is maxDimension.
func (o Options) LengthLimit(maxDimension int) int {
	if o.ExclusiveMax {
		return maxDimension
	}
	return maxDimension + 1
}

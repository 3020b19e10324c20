package models

// WordSet is the vocabulary a candidate must belong to. Words are stored in
// lower case.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from already normalised words.
func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	for _, w := range words {
		ws.Add(w)
	}
	return ws
}

// Add inserts a word.
func (ws WordSet) Add(word string) {
	ws[word] = struct{}{}
}

// Contains reports whether word is in the set. No case folding is done.
func (ws WordSet) Contains(word string) bool {
	_, ok := ws[word]
	return ok
}

// Len returns the number of distinct words.
func (ws WordSet) Len() int {
	return len(ws)
}

package models

// Match is a dictionary word found in the grid.
type Match struct {
	// Word is the word as it appears in the grid (upper-case).
	Word string `json:"word"`
	// Row is the row of the first letter (0-based).
	Row int `json:"row"`
	// Col is the column of the first letter (0-based).
	Col int `json:"col"`
	// Direction is the direction the word reads in from (Row, Col).
	Direction Direction `json:"direction"`
}

// MatchView is the structured output form of a Match.
type MatchView struct {
	Match
	// Heading is the compass point of Direction (E, SW, ...).
	Heading string `json:"heading"`
}

// View returns the structured output form of m.
func (m Match) View() MatchView {
	return MatchView{Match: m, Heading: m.Direction.Heading()}
}

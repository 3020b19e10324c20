package models

// Candidate is a run of grid cells tested as a potential word.
type Candidate struct {
	// Text is the characters in reading order.
	Text string
	// Row is the row of the first character.
	Row int
	// Col is the column of the first character.
	Col int
	// Direction is the reading direction from (Row, Col).
	Direction Direction
}

// Len returns the number of characters.
func (c Candidate) Len() int {
	return len([]rune(c.Text))
}

// Reverse returns the same run read back to front. It starts at the cell
// holding the last character of c and reads in the paired direction.
func (c Candidate) Reverse() Candidate {
	runes := []rune(c.Text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	dr, dc := c.Direction.Step()
	n := len(runes) - 1
	return Candidate{
		Text:      string(runes),
		Row:       c.Row + n*dr,
		Col:       c.Col + n*dc,
		Direction: c.Direction.Reverse(),
	}
}

// Match converts the candidate into a match record.
func (c Candidate) Match() Match {
	return Match{
		Word:      c.Text,
		Row:       c.Row,
		Col:       c.Col,
		Direction: c.Direction,
	}
}

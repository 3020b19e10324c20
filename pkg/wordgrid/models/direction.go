package models

import (
	"fmt"
	"math"
)

// Direction is one of the eight reading directions in a grid.
type Direction int

const (
	// Across reads left to right.
	Across Direction = iota
	// Down reads top to bottom.
	Down
	// DownRight reads along the ↘ diagonal.
	DownRight
	// DownLeft reads along the ↙ diagonal.
	DownLeft
	// Left is the reverse of Across.
	Left
	// Up is the reverse of Down.
	Up
	// UpLeft is the reverse of DownRight.
	UpLeft
	// UpRight is the reverse of DownLeft.
	UpRight
)

var directionLabels = map[Direction]string{
	Across:    "across",
	Down:      "down",
	DownRight: "down right",
	DownLeft:  "down left",
	Left:      "left",
	Up:        "up",
	UpLeft:    "up left",
	UpRight:   "up right",
}

var directionSteps = map[Direction][2]int{
	Across:    {0, 1},
	Down:      {1, 0},
	DownRight: {1, 1},
	DownLeft:  {1, -1},
	Left:      {0, -1},
	Up:        {-1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {-1, 1},
}

// String returns the human label, e.g. "down left".
func (d Direction) String() string {
	if label, ok := directionLabels[d]; ok {
		return label
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step returns the row and column increments for one character.
func (d Direction) Step() (dr, dc int) {
	s := directionSteps[d]
	return s[0], s[1]
}

// IsForward reports whether d is one of the scanned axes.
func (d Direction) IsForward() bool {
	return d >= Across && d <= DownLeft
}

// Reverse returns the paired direction along the same axis.
func (d Direction) Reverse() Direction {
	if d.IsForward() {
		return d + 4
	}
	return d - 4
}

// Heading returns the compass point of the direction, with north at the top
// of the grid: E, NE, N, NW, W, SW, S or SE.
func (d Direction) Heading() string {
	dr, dc := d.Step()
	if dr == 0 && dc == 0 {
		return ""
	}

	angle := math.Atan2(float64(-dr), float64(dc)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	switch {
	case angle >= 337.5 || angle < 22.5:
		return "E"
	case angle < 67.5:
		return "NE"
	case angle < 112.5:
		return "N"
	case angle < 157.5:
		return "NW"
	case angle < 202.5:
		return "W"
	case angle < 247.5:
		return "SW"
	case angle < 292.5:
		return "S"
	default:
		return "SE"
	}
}

// ParseDirection converts a label back to a Direction.
func ParseDirection(label string) (Direction, error) {
	for d, l := range directionLabels {
		if l == label {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", label)
}

// MarshalText encodes the direction as its label.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction label.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

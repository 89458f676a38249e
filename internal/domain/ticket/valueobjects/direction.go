package valueobjects

import "fmt"

// Direction marks whether a load came into the yard or went out.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// NewDirection parses a stored or submitted direction string.
func NewDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid direction: %q", s)
	}
	return d, nil
}

func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

func (d Direction) String() string {
	return string(d)
}

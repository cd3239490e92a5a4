// Package source provides position types shared by all analyzer phases.
package source

import "fmt"

// Position is a single point in a source buffer.
// Line and Column are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// NewPosition creates a new position
func NewPosition(line, column, offset int) *Position {
	return &Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}

func (p *Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span in a source buffer.
// End points one past the last character of the span.
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation creates a location from start and end positions
func NewLocation(start, end *Position) *Location {
	return &Location{
		Start: start,
		End:   end,
	}
}

// Package hex implements integer geometry for an odd-r offset hex grid
// (odd rows shoved half a hex to the right).
package hex

import "fmt"

type Coord struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Cube is the three-axis form of a Coord; X+Y+Z is always 0.
type Cube struct{ X, Y, Z int }

func ToCube(c Coord) Cube {
	x := c.Col - (c.Row-(c.Row&1))/2
	z := c.Row
	return Cube{X: x, Y: -x - z, Z: z}
}

func (a Cube) Sub(b Cube) Cube { return Cube{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Distance is the number of hex steps between a and b.
func Distance(a, b Coord) int {
	d := ToCube(a).Sub(ToCube(b))
	return max(abs(d.X), abs(d.Y), abs(d.Z))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// neighbour offsets in scan order E, NE, NW, W, SW, SE
var (
	evenRowDirs = [6]Coord{{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	oddRowDirs  = [6]Coord{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}}
)

type Section string

const (
	SectionLeft   Section = "left"
	SectionCenter Section = "center"
	SectionRight  Section = "right"
)

var Sections = [3]Section{SectionLeft, SectionCenter, SectionRight}

type Grid struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Reference board size.
var DefaultGrid = Grid{Width: 13, Height: 9}

func (g Grid) Contains(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Neighbors returns the in-bounds hexes adjacent to c.
func (g Grid) Neighbors(c Coord) []Coord {
	dirs := &evenRowDirs
	if c.Row&1 == 1 {
		dirs = &oddRowDirs
	}
	out := make([]Coord, 0, 6)
	for _, d := range dirs {
		n := Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Section splits the board into three lanes: the four leftmost columns,
// the four rightmost, and everything between.
func (g Grid) Section(col int) Section {
	switch {
	case col <= 3:
		return SectionLeft
	case col >= g.Width-4:
		return SectionRight
	default:
		return SectionCenter
	}
}

package elitecorn

import (
	"fmt"
	"strings"
)

type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(x%d, y%d)", c.X, c.Y)
}

func (c Coordinate) Translate(dx int, dy int) Coordinate {
	return Coordinate{c.X + dx, c.Y + dy}
}

func (c Coordinate) Add(d Direction) Coordinate {
	dx, dy := d.Vector()
	return c.Translate(dx, dy)
}

// Direction names the grid edge a viewer stands on. Its vector points from
// any cell toward that edge, so visibility from North walks the vector
// (0,-1) and looking outward past the cell walks the flipped vector.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var vectors = [...][2]int{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

var opposites = [...]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

var directionNames = [...]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

// Vector is (0, 0) for an unknown direction.
func (d Direction) Vector() (dx int, dy int) {
	if !d.valid() {
		return 0, 0
	}
	v := vectors[d]
	return v[0], v[1]
}

// Opposite leaves an unknown direction unchanged.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return d
	}
	return opposites[d]
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) Directions() []Direction {
	return []Direction{d}
}

// Flip returns the antipodal direction.
func Flip(d Direction) Direction {
	return d.Opposite()
}

type Group int

const (
	Row Group = iota
	Column
	All
)

var groupMembers = [...][]Direction{
	Row:    {East, West},
	Column: {North, South},
	All:    {North, South, East, West},
}

var groupNames = [...]string{
	Row:    "row",
	Column: "column",
	All:    "all",
}

func (g Group) valid() bool {
	return g >= Row && g <= All
}

func (g Group) String() string {
	if !g.valid() {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}

// Directions returns a copy of the group's members so callers can't edit
// the shared table. An unknown group has no members.
func (g Group) Directions() []Direction {
	if !g.valid() {
		return nil
	}
	members := groupMembers[g]
	out := make([]Direction, len(members))
	copy(out, members)
	return out
}

// Selector is either a single Direction or a Group of them.
type Selector interface {
	Directions() []Direction
	String() string
}

// Expand lists the directions a selector stands for, always in the same
// order.
func Expand(s Selector) []Direction {
	return s.Directions()
}

func ParseSelector(s string) (Selector, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	for g, n := range groupNames {
		if n == name {
			return Group(g), nil
		}
	}
	return nil, fmt.Errorf("unknown direction or group %q", s)
}

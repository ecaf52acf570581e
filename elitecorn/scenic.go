package elitecorn

import (
	"errors"
)

var ErrEmptyGrid = errors.New("grid has no cells")

// IsVisibleFrom reports whether c is strictly taller than every cell between
// it and the edge named by d. Cells on that edge are always visible.
func (g *Grid) IsVisibleFrom(c Cell, d Direction) bool {
	for other := range g.CastRay(c.Coordinate, d) {
		if other.Height >= c.Height {
			return false
		}
	}
	return true
}

func (g *Grid) IsVisible(c Cell, s Selector) bool {
	for _, d := range Expand(s) {
		if g.IsVisibleFrom(c, d) {
			return true
		}
	}
	return false
}

// EliteScoreFrom counts the cells c sees looking away from the edge named
// by d, up to and including the first one at least as tall as c.
func (g *Grid) EliteScoreFrom(c Cell, d Direction) int {
	count := 0
	for other := range g.CastRay(c.Coordinate, Flip(d)) {
		count++
		if other.Height >= c.Height {
			break
		}
	}
	return count
}

func (g *Grid) EliteScore(c Cell, s Selector) int {
	score := 1
	for _, d := range Expand(s) {
		score *= g.EliteScoreFrom(c, d)
	}
	return score
}

func (g *Grid) CountVisible(s Selector) int {
	ct := 0
	for _, c := range g.cells {
		if g.IsVisible(c, s) {
			ct++
		}
	}
	return ct
}

func (g *Grid) MaxEliteScore(s Selector) (int, error) {
	_, score, err := g.BestCell(s)
	return score, err
}

// BestCell finds the cell with the highest elite score. Ties go to the
// first cell in row-major order.
func (g *Grid) BestCell(s Selector) (Cell, int, error) {
	if g.Size() == 0 {
		return Cell{}, 0, ErrEmptyGrid
	}
	var best Cell
	bestScore := -1
	for c := range g.Cells() {
		if score := g.EliteScore(c, s); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore, nil
}

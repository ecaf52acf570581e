package elitecorn

import (
	"strconv"
	"strings"
)

const (
	scoreDelimiter = "|"
	visibleChar    = "X"
	hiddenChar     = "_"
)

func (g *Grid) renderRows(cellText func(Cell) string, sep string) string {
	lines := make([]string, 0, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]string, 0, g.width)
		for x := 0; x < g.width; x++ {
			row = append(row, cellText(g.cells[Coordinate{x, y}]))
		}
		lines = append(lines, strings.Join(row, sep))
	}
	return strings.Join(lines, "\n")
}

// RenderEliteScores prints each row's scores separated by "|".
func (g *Grid) RenderEliteScores(s Selector) string {
	return g.renderRows(func(c Cell) string {
		return strconv.Itoa(g.EliteScore(c, s))
	}, scoreDelimiter)
}

// RenderVisibility marks visible cells with X and hidden ones with _.
func (g *Grid) RenderVisibility(s Selector) string {
	return g.renderRows(func(c Cell) string {
		if g.IsVisible(c, s) {
			return visibleChar
		}
		return hiddenChar
	}, "")
}

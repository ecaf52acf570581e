package elitecorn

import (
	"reflect"
	"testing"
)

func TestFlipIsAntipodal(t *testing.T) {
	tests := []struct {
		in   Direction
		want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got := Flip(tt.in)
			if got != tt.want {
				t.Errorf("Flip(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if Flip(got) != tt.in {
				t.Errorf("Flip(Flip(%v)) = %v", tt.in, Flip(got))
			}
			dx, dy := tt.in.Vector()
			fx, fy := got.Vector()
			if dx != -fx || dy != -fy {
				t.Errorf("vector of %v is (%d,%d), flipped (%d,%d)", tt.in, dx, dy, fx, fy)
			}
		})
	}
}

func TestCoordinateAdd(t *testing.T) {
	origin := Coordinate{2, 3}
	tests := []struct {
		d    Direction
		want Coordinate
	}{
		{North, Coordinate{2, 2}},
		{South, Coordinate{2, 4}},
		{East, Coordinate{3, 3}},
		{West, Coordinate{1, 3}},
	}

	for _, tt := range tests {
		if got := origin.Add(tt.d); got != tt.want {
			t.Errorf("%v + %v = %v, want %v", origin, tt.d, got, tt.want)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		want []Direction
	}{
		{"single", East, []Direction{East}},
		{"row", Row, []Direction{East, West}},
		{"column", Column, []Direction{North, South}},
		{"all", All, []Direction{North, South, East, West}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.sel)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand(%v) = %v, want %v", tt.sel, got, tt.want)
			}
			if again := Expand(tt.sel); !reflect.DeepEqual(again, got) {
				t.Errorf("Expand(%v) is not stable: %v then %v", tt.sel, got, again)
			}
		})
	}
}

func TestExpandReturnsCopy(t *testing.T) {
	ds := Expand(All)
	ds[0] = West
	if Expand(All)[0] != North {
		t.Error("editing an expansion changed the group table")
	}
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in      string
		want    Selector
		wantErr bool
	}{
		{"north", North, false},
		{"SOUTH", South, false},
		{" East ", East, false},
		{"west", West, false},
		{"row", Row, false},
		{"Column", Column, false},
		{"all", All, false},
		{"up", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSelector(%q) = %v, expected an error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSelector(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSelector(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnknownValues(t *testing.T) {
	d := Direction(9)
	if dx, dy := d.Vector(); dx != 0 || dy != 0 {
		t.Errorf("Direction(9).Vector() = (%d,%d), want (0,0)", dx, dy)
	}
	if got := Flip(d); got != d {
		t.Errorf("Flip(Direction(9)) = %v", got)
	}
	if got := d.String(); got != "Direction(9)" {
		t.Errorf("Direction(9).String() = %q", got)
	}

	g := Group(-1)
	if ds := Expand(g); len(ds) != 0 {
		t.Errorf("Expand(Group(-1)) = %v, want none", ds)
	}
	if got := g.String(); got != "Group(-1)" {
		t.Errorf("Group(-1).String() = %q", got)
	}
}

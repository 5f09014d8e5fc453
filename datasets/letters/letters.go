package letters

import "github.com/neurlang/perceptron/datasets"

// Rows and Cols are the glyph grid size
const Rows = 7
const Cols = 5

var glyphs = map[string][Rows]string{
	"A": {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	"B": {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	"C": {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	"D": {"####.", "#...#", "#...#", "#...#", "#...#", "#...#", "####."},
	"E": {"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	"F": {"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	"H": {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	"L": {"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	"O": {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	"T": {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
}

// Dataset returns a fresh copy of the letters dataset
func Dataset() (set datasets.Dataset) {
	set.Init()
	for label, g := range glyphs {
		set[label] = Glyph(g)
	}
	return
}

// Glyph flattens a drawing into a feature vector, '#' is 1 and anything else is 0
func Glyph(g [Rows]string) []float64 {
	var v = make([]float64, 0, Rows*Cols)
	for _, row := range g {
		for i := 0; i < Cols; i++ {
			if i < len(row) && row[i] == '#' {
				v = append(v, 1)
			} else {
				v = append(v, 0)
			}
		}
	}
	return v
}

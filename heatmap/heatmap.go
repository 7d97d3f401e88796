// Package heatmap renders 2-D numeric arrays (Hessian views, lattice maps)
// as image files. It is a presentation collaborator only: nothing on the
// numerical path depends on it.
//
// Style is an explicit per-call options struct. Nothing here mutates global
// plotting state at import time; callers that want the reference look simply
// pass DefaultStyle().
//
// Non-finite entries can reach this package if conditioning was skipped;
// they are excluded from color scaling rather than poisoning it.
package heatmap

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyMatrix indicates a matrix with no rows or columns.
var ErrEmptyMatrix = errors.New("heatmap: matrix must have at least one row and one column")

// ErrNoFiniteValues indicates every entry was NaN or ±Inf, leaving nothing
// to scale colors against.
var ErrNoFiniteValues = errors.New("heatmap: matrix holds no finite values")

// Style bundles the figure parameters applied to a single render call.
type Style struct {
	Width, Height vg.Length
	FontSize      vg.Length
	// Colors is the palette resolution.
	Colors int
}

// DefaultStyle mirrors the reference figure: a 6.5-inch square canvas with
// paper-size fonts.
func DefaultStyle() Style {
	return Style{
		Width:    6.5 * vg.Inch,
		Height:   6.5 * vg.Inch,
		FontSize: vg.Points(24),
		Colors:   255,
	}
}

// grid adapts a gonum matrix to the plotter's cell-grid interface.
type grid struct{ m mat.Matrix }

func (g grid) Dims() (int, int) { r, c := g.m.Dims(); return c, r }
func (g grid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if math.IsInf(v, 0) {
		return math.NaN() // keep masked markers out of the color map
	}

	return v
}
func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// Render writes a heatmap of m to path (format chosen by extension, e.g.
// .png or .pdf) with the given title and axis labels.
func Render(m mat.Matrix, path, title, xLabel, yLabel string, st Style) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}

	lo, hi, ok := finiteRange(m)
	if !ok {
		return ErrNoFiniteValues
	}

	if st.Colors < 2 {
		st.Colors = DefaultStyle().Colors
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if st.FontSize > 0 {
		p.Title.TextStyle.Font.Size = st.FontSize
		p.X.Label.TextStyle.Font.Size = st.FontSize
		p.Y.Label.TextStyle.Font.Size = st.FontSize
	}

	hm := plotter.NewHeatMap(grid{m: m}, moreland.SmoothBlueRed().Palette(st.Colors))
	// Scale colors over the finite entries only.
	hm.Min, hm.Max = lo, hi
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1 // flat data still needs a nonzero color span
	}
	p.Add(hm)

	w, h := st.Width, st.Height
	if w <= 0 || h <= 0 {
		def := DefaultStyle()
		w, h = def.Width, def.Height
	}

	return p.Save(w, h, path)
}

// finiteRange returns the min/max over finite entries of m.
func finiteRange(m mat.Matrix) (lo, hi float64, ok bool) {
	r, c := m.Dims()
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			ok = true
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	return lo, hi, ok
}

package lammps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// boxBoundsMarker is the literal section header emitted by the simulation
// tool ahead of the three min/max bounds lines.
const boxBoundsMarker = "ITEM: BOX BOUNDS pp pp pp"

// Hessian rows can run to megabytes for large cells; give the scanner room.
const maxLineBytes = 64 << 20

// BoxBounds holds the periodic simulation box extents along x, y, z.
type BoxBounds struct {
	Min [3]float64
	Max [3]float64
}

// Extents returns Max-Min per axis, in the file's length units (angstrom).
func (b BoxBounds) Extents() [3]float64 {
	var e [3]float64
	for k := 0; k < 3; k++ {
		e[k] = b.Max[k] - b.Min[k]
	}

	return e
}

// ReadHessian reads a whitespace-delimited numeric matrix, skipping skipRows
// leading lines, and returns it as a square dense matrix.
func ReadHessian(path string, skipRows int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readRows(f, skipRows)
	if err != nil {
		return nil, fmt.Errorf("hessian %s: %w", path, err)
	}

	n := len(rows)
	if len(rows[0]) != n {
		return nil, fmt.Errorf("hessian %s: %dx%d: %w", path, n, len(rows[0]), ErrNotSquare)
	}

	flat := make([]float64, 0, n*n)
	for _, r := range rows {
		flat = append(flat, r...)
	}

	return mat.NewDense(n, n, flat), nil
}

// ReadCrystal reads the per-atom coordinate table that follows skipRows
// header lines. All columns are kept; callers address the unwrapped
// positions at columns 3..5.
func ReadCrystal(path string, skipRows int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readRows(f, skipRows)
	if err != nil {
		return nil, fmt.Errorf("crystal %s: %w", path, err)
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		flat = append(flat, r...)
	}

	return mat.NewDense(len(rows), cols, flat), nil
}

// ReadBoxBounds scans the coordinate file for the box-bounds section and
// parses the three min/max pairs that follow the marker.
func ReadBoxBounds(path string) (BoxBounds, error) {
	f, err := os.Open(path)
	if err != nil {
		return BoxBounds{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for sc.Scan() {
		if !strings.Contains(sc.Text(), boxBoundsMarker) {
			continue
		}

		var b BoxBounds
		for k := 0; k < 3; k++ {
			if !sc.Scan() {
				return BoxBounds{}, fmt.Errorf("bounds axis %d: %w", k, ErrMalformedBounds)
			}
			fields := strings.Fields(sc.Text())
			if len(fields) != 2 {
				return BoxBounds{}, fmt.Errorf("bounds axis %d: %w", k, ErrMalformedBounds)
			}
			if b.Min[k], err = strconv.ParseFloat(fields[0], 64); err != nil {
				return BoxBounds{}, fmt.Errorf("bounds axis %d: %w", k, ErrMalformedBounds)
			}
			if b.Max[k], err = strconv.ParseFloat(fields[1], 64); err != nil {
				return BoxBounds{}, fmt.Errorf("bounds axis %d: %w", k, ErrMalformedBounds)
			}
		}

		return b, nil
	}
	if err := sc.Err(); err != nil {
		return BoxBounds{}, err
	}

	return BoxBounds{}, fmt.Errorf("%s: %w", path, ErrBoxBoundsNotFound)
}

// readRows parses whitespace-delimited numeric rows after skipping skipRows
// lines. Every row must match the first row's width; blank lines between
// data rows are ignored.
func readRows(r io.Reader, skipRows int) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	for i := 0; i < skipRows; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("skip %d of %d header rows: %w", i, skipRows, ErrShortFile)
		}
	}

	var (
		rows [][]float64
		want int
	)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if want == 0 {
			want = len(fields)
		}
		if len(fields) != want {
			return nil, fmt.Errorf("row %d: got %d columns, want %d: %w",
				len(rows), len(fields), want, ErrMalformedRow)
		}

		row := make([]float64, want)
		for j, fv := range fields {
			v, err := strconv.ParseFloat(fv, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d %q: %w", len(rows), j, fv, ErrMalformedRow)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrShortFile
	}

	return rows, nil
}

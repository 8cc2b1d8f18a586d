package game

import (
	"fmt"
	"math"
)

// NumFeatures is the length of the feature and weight vectors.
const NumFeatures = 6

// Features describes the board left behind by a placement (Pierre Dellacherie).
type Features struct {
	LandingHeight  float64 // Mean height of the piece's cells above the floor
	ErodedCells    float64 // Lines cleared times the piece's own cells cleared
	RowTransitions float64
	ColTransitions float64
	BuriedHoles    float64
	Wells          float64
}

// Vector returns the features in weight order.
func (f Features) Vector() [NumFeatures]float64 {
	return [NumFeatures]float64{
		f.LandingHeight,
		f.ErodedCells,
		f.RowTransitions,
		f.ColTransitions,
		f.BuriedHoles,
		f.Wells,
	}
}

// Weights are the coefficients of the features, in Features.Vector order.
type Weights [NumFeatures]float64

// DefaultWeights were tuned offline for a 10x20 board.
var DefaultWeights = Weights{
	-4.500158825082766,
	3.4181268101392694,
	-3.2178882868487753,
	-9.348695305445199,
	-7.899265427351652,
	-3.3855972247263626,
}

// Validate rejects non-finite weights.
func (w Weights) Validate() error {
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %d is not finite: %v", i, v)
		}
	}
	return nil
}

// Score is the weighted sum of the features.
func (w Weights) Score(f Features) float64 {
	score := 0.0
	for i, v := range f.Vector() {
		score += w[i] * v
	}
	return score
}

// Evaluate scores the placement of layout on a copy of the board. It returns
// false when the placement would leave a cell above row 0.
func Evaluate(b *Board, layout Layout, p Placement, w Weights) (float64, bool) {
	f, ok := ExtractFeatures(b, layout, p)
	if !ok {
		return 0, false
	}
	return w.Score(f), true
}

// ExtractFeatures locks layout at the placement on a copy of the board, clears
// full rows and measures the result. The board itself is not modified.
func ExtractFeatures(b *Board, layout Layout, p Placement) (Features, bool) {
	if Overflows(layout, p.Row) {
		return Features{}, false
	}
	sim := b.Copy()
	sim.Stamp(layout, p.Position(), Falling)

	var f Features
	for _, o := range layout {
		f.LandingHeight += float64(sim.Height - (p.Row + o.DY))
	}
	f.LandingHeight /= CellsPerPiece

	lines := sim.ClearFullRows()
	f.ErodedCells = float64(lines * (CellsPerPiece - sim.Count(Falling)))
	f.RowTransitions = float64(rowTransitions(sim))
	f.ColTransitions = float64(colTransitions(sim))
	f.BuriedHoles = float64(buriedHoles(sim))
	f.Wells = float64(wells(sim))
	return f, true
}

// rowTransitions counts filled/empty changes along each row. Both side walls
// count as filled.
func rowTransitions(b *Board) int {
	n := 0
	for y := 0; y < b.Height; y++ {
		if b.At(0, y) == Empty {
			n++
		}
		for x := 0; x < b.Width-1; x++ {
			if (b.At(x, y) == Empty) != (b.At(x+1, y) == Empty) {
				n++
			}
		}
		if b.At(b.Width-1, y) == Empty {
			n++
		}
	}
	return n
}

// colTransitions counts filled/empty changes down each column. The floor counts
// as filled, the space above row 0 does not.
func colTransitions(b *Board) int {
	n := 0
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height-1; y++ {
			if (b.At(x, y) == Empty) != (b.At(x, y+1) == Empty) {
				n++
			}
		}
		if b.At(x, b.Height-1) == Empty {
			n++
		}
	}
	return n
}

// buriedHoles counts empty cells directly below a filled cell.
func buriedHoles(b *Board) int {
	n := 0
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height-1; y++ {
			if b.At(x, y) != Empty && b.At(x, y+1) == Empty {
				n++
			}
		}
	}
	return n
}

// wells sums the triangular depth of every well. A well opens at an empty cell
// whose neighbours (or walls) are both filled and keeps deepening through the
// empty cells below it, whatever their neighbours.
func wells(b *Board) int {
	sum := 0
	for x := 0; x < b.Width; x++ {
		inWell := false
		depth := 0
		for y := 0; y < b.Height; y++ {
			empty := b.At(x, y) == Empty
			switch {
			case !inWell && empty && b.occupied(x-1, y) && b.occupied(x+1, y):
				inWell = true
				depth++
				sum += depth
			case inWell && empty:
				depth++
				sum += depth
			default:
				inWell = false
				depth = 0
			}
		}
	}
	return sum
}

package shape

import (
	"fmt"
	"sort"

	"github.com/gogpu/viz"
)

// Order selects how stacked series are permuted before stacking.
type Order int

const (
	// OrderNone keeps input order.
	OrderNone Order = iota
	// OrderAscending sorts by series sum, smallest first.
	OrderAscending
	// OrderDescending sorts by series sum, largest first.
	OrderDescending
	// OrderAppearance sorts by the first row with a non-zero value,
	// ties broken by input index.
	OrderAppearance
	// OrderInsideOut places the earliest-appearing series in the
	// middle, alternating outward. Used with streamgraphs.
	OrderInsideOut
	// OrderReverse reverses input order.
	OrderReverse
)

// Offset selects how stacked series are positioned against the
// baseline.
type Offset int

const (
	// OffsetNone stacks up from a zero baseline.
	OffsetNone Offset = iota
	// OffsetExpand normalizes each row to fill [0, 1].
	OffsetExpand
	// OffsetDiverging stacks positive values up and negative values
	// down from zero.
	OffsetDiverging
	// OffsetSilhouette centers each row around zero.
	OffsetSilhouette
	// OffsetWiggle minimizes the weighted change in slope, the
	// classic streamgraph baseline.
	OffsetWiggle
)

// Series is one stacked layer: its key, position in the input, and the
// computed [y0, y1] bounds per row.
type Series struct {
	Key    string
	Index  int // position in the input key list
	Bounds [][2]float64
}

// Stack computes stacked bounds for an m-row by n-series value matrix.
// Rows are data points; row r's value for series j is data[r][j].
// The result is in stacking order (bottom first).
func Stack(keys []string, data [][]float64, order Order, offset Offset) ([]Series, error) {
	n := len(keys)
	for r, row := range data {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values for %d keys",
				viz.ErrDimensionMismatch, r, len(row), n)
		}
	}
	if n == 0 {
		return nil, nil
	}
	m := len(data)

	perm := stackOrder(data, n, order)

	out := make([]Series, n)
	for pos, j := range perm {
		out[pos] = Series{Key: keys[j], Index: j, Bounds: make([][2]float64, m)}
	}

	for r := 0; r < m; r++ {
		stackRow(out, r, data[r], offset)
	}
	if offset == OffsetExpand {
		expandRows(out)
	} else if offset == OffsetWiggle {
		wiggleShift(out, data, perm)
	}
	return out, nil
}

// stackRow fills row ri's bounds for every series in stacking order.
func stackRow(out []Series, ri int, row []float64, offset Offset) {
	switch offset {
	case OffsetDiverging:
		up, down := 0.0, 0.0
		for i := range out {
			v := row[out[i].Index]
			if v >= 0 {
				out[i].Bounds[ri] = [2]float64{up, up + v}
				up += v
			} else {
				out[i].Bounds[ri] = [2]float64{down + v, down}
				down += v
			}
		}
	case OffsetSilhouette:
		total := 0.0
		for i := range out {
			total += row[out[i].Index]
		}
		base := -total / 2
		for i := range out {
			v := row[out[i].Index]
			out[i].Bounds[ri] = [2]float64{base, base + v}
			base += v
		}
	default:
		base := 0.0
		for i := range out {
			v := row[out[i].Index]
			out[i].Bounds[ri] = [2]float64{base, base + v}
			base += v
		}
	}
}

// expandRows rescales every row so the stacked total spans [0, 1].
func expandRows(out []Series) {
	if len(out) == 0 {
		return
	}
	m := len(out[0].Bounds)
	for r := 0; r < m; r++ {
		total := out[len(out)-1].Bounds[r][1]
		if total == 0 {
			continue
		}
		for i := range out {
			out[i].Bounds[r][0] /= total
			out[i].Bounds[r][1] /= total
		}
	}
}

// wiggleShift moves each row's baseline to minimize the weighted
// change in slope across the stream. The first row is centered like a
// silhouette.
func wiggleShift(out []Series, data [][]float64, perm []int) {
	if len(out) == 0 || len(data) == 0 {
		return
	}
	m := len(data)
	shift := make([]float64, m)

	sum0 := 0.0
	for _, j := range perm {
		sum0 += data[0][j]
	}
	shift[0] = -sum0 / 2

	for r := 1; r < m; r++ {
		var s1, s2 float64
		accum := 0.0
		for _, j := range perm {
			dv := data[r][j] - data[r-1][j]
			s3 := accum + dv/2
			s1 += data[r][j]
			s2 += s3 * data[r][j]
			accum += dv
		}
		shift[r] = shift[r-1]
		if s1 != 0 {
			shift[r] -= s2 / s1
		}
	}
	for i := range out {
		for r := 0; r < m; r++ {
			out[i].Bounds[r][0] += shift[r]
			out[i].Bounds[r][1] += shift[r]
		}
	}
}

// stackOrder returns the stacking permutation: perm[pos] is the input
// index of the series stacked at position pos.
func stackOrder(data [][]float64, n int, order Order) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	switch order {
	case OrderNone:
	case OrderReverse:
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			perm[i], perm[j] = perm[j], perm[i]
		}
	case OrderAscending, OrderDescending:
		sums := seriesSums(data, n)
		sort.SliceStable(perm, func(a, b int) bool {
			if order == OrderAscending {
				return sums[perm[a]] < sums[perm[b]]
			}
			return sums[perm[a]] > sums[perm[b]]
		})
	case OrderAppearance:
		first := firstNonZero(data, n)
		sort.SliceStable(perm, func(a, b int) bool {
			return first[perm[a]] < first[perm[b]]
		})
	case OrderInsideOut:
		first := firstNonZero(data, n)
		sums := seriesSums(data, n)
		byAppearance := make([]int, n)
		copy(byAppearance, perm)
		sort.SliceStable(byAppearance, func(a, b int) bool {
			return first[byAppearance[a]] < first[byAppearance[b]]
		})
		var tops, bottoms []int
		top, bottom := 0.0, 0.0
		for _, j := range byAppearance {
			if top < bottom {
				top += sums[j]
				tops = append(tops, j)
			} else {
				bottom += sums[j]
				bottoms = append(bottoms, j)
			}
		}
		perm = perm[:0]
		for i := len(bottoms) - 1; i >= 0; i-- {
			perm = append(perm, bottoms[i])
		}
		perm = append(perm, tops...)
	}
	return perm
}

func seriesSums(data [][]float64, n int) []float64 {
	sums := make([]float64, n)
	for _, row := range data {
		for j := 0; j < n; j++ {
			sums[j] += row[j]
		}
	}
	return sums
}

// firstNonZero returns, per series, the index of the first row with a
// non-zero value (len(data) when all rows are zero).
func firstNonZero(data [][]float64, n int) []int {
	first := make([]int, n)
	for j := 0; j < n; j++ {
		first[j] = len(data)
		for r, row := range data {
			if row[j] != 0 {
				first[j] = r
				break
			}
		}
	}
	return first
}

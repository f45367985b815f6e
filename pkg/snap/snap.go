// Package snap repairs imprecise, independently-detected 2D geometry by
// collapsing near-duplicate coordinates onto shared values. Opening
// endpoints are first locked onto wall endpoints, then every coordinate is
// grid-aligned along each axis independently.
package snap

import (
	"math"
	"sort"

	"floorwright/pkg/plan"
)

// Default thresholds, in plan units.
const (
	DefaultAxisThreshold    = 15.0
	DefaultOpeningThreshold = 20.0
)

// Normalize runs the full normalization: opening endpoints snap to
// reference endpoints first, then all geometry is jointly grid-aligned.
// The input slice is never modified.
func Normalize(elems []plan.Element) []plan.Element {
	return AxisSnap(SnapOpenings(elems, DefaultOpeningThreshold), DefaultAxisThreshold)
}

// AxisSnap clusters the distinct X coordinates and, separately, the
// distinct Y coordinates across every endpoint and replaces each value
// with its cluster's arithmetic mean. Clustering is chained: a new cluster
// starts only when the gap to the previous accepted value exceeds the
// threshold, so a long run of closely spaced values collapses to one mean
// even when its ends drift more than the threshold from that mean.
func AxisSnap(elems []plan.Element, threshold float64) []plan.Element {
	if len(elems) == 0 {
		return nil
	}
	xs := make([]float64, 0, len(elems)*2)
	ys := make([]float64, 0, len(elems)*2)
	for _, e := range elems {
		xs = append(xs, e.P1.X, e.P2.X)
		ys = append(ys, e.P1.Y, e.P2.Y)
	}
	snapX := snapMap(xs, threshold)
	snapY := snapMap(ys, threshold)

	out := make([]plan.Element, len(elems))
	for i, e := range elems {
		e.P1.X = snapX[e.P1.X]
		e.P1.Y = snapY[e.P1.Y]
		e.P2.X = snapX[e.P2.X]
		e.P2.Y = snapY[e.P2.Y]
		out[i] = e
	}
	return out
}

// snapMap groups sorted distinct values into chained clusters and maps
// every member to its cluster mean.
func snapMap(values []float64, threshold float64) map[float64]float64 {
	distinct := make(map[float64]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	sorted := make([]float64, 0, len(distinct))
	for v := range distinct {
		sorted = append(sorted, v)
	}
	sort.Float64s(sorted)

	result := make(map[float64]float64, len(sorted))
	group := []float64{}
	flush := func() {
		if len(group) == 0 {
			return
		}
		sum := 0.0
		for _, v := range group {
			sum += v
		}
		mean := sum / float64(len(group))
		for _, v := range group {
			result[v] = mean
		}
		group = group[:0]
	}
	for _, v := range sorted {
		if len(group) > 0 && math.Abs(v-group[len(group)-1]) > threshold {
			flush()
		}
		group = append(group, v)
	}
	flush()
	return result
}

// SnapOpenings overwrites each door/window endpoint with the first
// reference endpoint (an endpoint of any non-opening element) found within
// the threshold Euclidean distance. First found wins, not nearest; the
// scan order is element order, first endpoint before second. Endpoints
// with no reference in range are left unchanged. The input slice is never
// modified.
func SnapOpenings(elems []plan.Element, threshold float64) []plan.Element {
	var refs []plan.Point
	for _, e := range elems {
		if e.Class != plan.ClassDoor && e.Class != plan.ClassWindow {
			refs = append(refs, e.P1, e.P2)
		}
	}

	adopt := func(p plan.Point) plan.Point {
		for _, r := range refs {
			if math.Hypot(p.X-r.X, p.Y-r.Y) < threshold {
				return r
			}
		}
		return p
	}

	out := make([]plan.Element, len(elems))
	for i, e := range elems {
		if e.Class == plan.ClassDoor || e.Class == plan.ClassWindow {
			e.P1 = adopt(e.P1)
			e.P2 = adopt(e.P2)
		}
		out[i] = e
	}
	return out
}

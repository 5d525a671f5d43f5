// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package planar builds convex hulls and onion peels of point sets projected onto the
// xy-plane.
package planar

import (
	"slices"

	"github.com/2dChan/convexhull/geom"
	"github.com/golang/geo/r3"
)

// Hull is a convex polygon over a point set.
type Hull struct {
	Points []r3.Vector
	// NOTE: Sort in CCW, first vertex is not repeated at the end.
	Vertices []int
}

// NumVertices returns the number of hull vertices.
func (h *Hull) NumVertices() int {
	return len(h.Vertices)
}

// Vertex returns the i-th hull vertex.
func (h *Hull) Vertex(i int) r3.Vector {
	if i < 0 || i >= len(h.Vertices) {
		panic("Vertex: index out of range")
	}
	return h.Points[h.Vertices[i]]
}

// IsPolygon reports whether the hull has at least three vertices.
func (h *Hull) IsPolygon() bool {
	return len(h.Vertices) >= 3
}

// Area returns the area enclosed by the hull.
func (h *Hull) Area() float64 {
	n := len(h.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	p0 := h.Vertex(0)
	for i := 1; i < n-1; i++ {
		area += geom.TriangleArea2D(p0, h.Vertex(i), h.Vertex(i+1))
	}
	return area
}

// Contains reports whether p lies inside or on the boundary of the hull.
func (h *Hull) Contains(p r3.Vector) bool {
	n := len(h.Vertices)
	if n < 3 {
		return false
	}
	for i := range n {
		if geom.Orientation2D(h.Vertex(i), h.Vertex((i+1)%n), p) < 0 {
			return false
		}
	}
	return true
}

// VertexSet returns the membership table of hull vertices, indexed like Points.
func (h *Hull) VertexSet() []bool {
	set := make([]bool, len(h.Points))
	for _, v := range h.Vertices {
		set[v] = true
	}
	return set
}

// NewHull computes the convex hull of points with the monotone chain algorithm.
// Collinear points on hull edges are not hull vertices. With two or fewer points the
// result lists every point unchanged.
func NewHull(points []r3.Vector) *Hull {
	return &Hull{
		Points:   points,
		Vertices: monotoneChain(points, sortedIndices(points, nil)),
	}
}

// sortedIndices returns subset (or every index when subset is nil) stably ordered by
// geom.CompareXY.
func sortedIndices(points []r3.Vector, subset []int) []int {
	var idx []int
	if subset == nil {
		idx = make([]int, len(points))
		for i := range idx {
			idx[i] = i
		}
	} else {
		idx = slices.Clone(subset)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return geom.CompareXY(points[a], points[b])
	})
	return idx
}

// monotoneChain runs Andrew's algorithm over idx, which must be sorted by
// geom.CompareXY.
func monotoneChain(points []r3.Vector, idx []int) []int {
	n := len(idx)
	if n <= 2 {
		return slices.Clone(idx)
	}

	hull := make([]int, 0, 2*n)
	turns := func(k int, i int) bool {
		return geom.Orientation2D(points[hull[k-2]], points[hull[k-1]], points[i]) > 0
	}

	for _, i := range idx {
		for len(hull) >= 2 && !turns(len(hull), i) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}

	lower := len(hull) + 1
	for j := n - 2; j >= 0; j-- {
		i := idx[j]
		for len(hull) >= lower && !turns(len(hull), i) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}

	// The upper chain closes on the first vertex.
	return hull[:len(hull)-1]
}

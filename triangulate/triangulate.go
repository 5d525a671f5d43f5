// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangulate splits the planar convex hull of a point set into triangles whose
// vertices are the input points.
package triangulate

import (
	"errors"

	"github.com/2dChan/convexhull/geom"
	"github.com/2dChan/convexhull/planar"
	"github.com/golang/geo/r3"
)

var (
	// ErrDegenerateHull is returned when the planar hull of the input has no area.
	ErrDegenerateHull = errors.New("triangulate: hull has fewer than 3 vertices")
)

// Triangulation is a triangulation of the planar hull of Vertices in which every
// vertex not in Dropped is a triangle corner.
type Triangulation struct {
	Vertices []r3.Vector
	Hull     *planar.Hull
	// NOTE: Sort in CCW per triangle.
	Triangles [][3]int
	// Dropped holds interior points that no triangle contained.
	Dropped []int

	// NOTE: Sort in CCW per vertex. Fans around boundary vertices start at the triangle
	// touching the boundary on the clockwise side.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

func (tr *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(tr.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := tr.IncidentTriangleOffsets[vIdx]
	end := tr.IncidentTriangleOffsets[vIdx+1]
	return tr.IncidentTriangleIndices[start:end]
}

func (tr *Triangulation) TriangleVertices(tIdx int) (r3.Vector, r3.Vector, r3.Vector) {
	if tIdx < 0 || tIdx >= len(tr.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := tr.Triangles[tIdx]
	return tr.Vertices[t[0]], tr.Vertices[t[1]], tr.Vertices[t[2]]
}

// Neighbors returns the vertices joined to vIdx by an edge, in counter-clockwise order.
func (tr *Triangulation) Neighbors(vIdx int) []int {
	incidentTris := tr.IncidentTriangles(vIdx)
	n := len(incidentTris)
	if n == 0 {
		return nil
	}

	neighbors := make([]int, 0, n+1)
	for _, tIdx := range incidentTris {
		neighbors = append(neighbors, NextVertex(tr.Triangles[tIdx], vIdx))
	}
	last := PrevVertex(tr.Triangles[incidentTris[n-1]], vIdx)
	if last != neighbors[0] {
		neighbors = append(neighbors, last)
	}
	return neighbors
}

// Edges returns every edge once, as vertex pairs with the smaller index first.
func (tr *Triangulation) Edges() [][2]int {
	edges := make([][2]int, 0, 3*len(tr.Triangles)/2+tr.Hull.NumVertices())
	for v := range tr.Vertices {
		for _, u := range tr.Neighbors(v) {
			if v < u {
				edges = append(edges, [2]int{v, u})
			}
		}
	}
	return edges
}

// Area returns the total area covered by the triangles.
func (tr *Triangulation) Area() float64 {
	area := 0.0
	for i := range tr.Triangles {
		area += geom.TriangleArea2D(tr.TriangleVertices(i))
	}
	return area
}

// NewTriangulation fans the planar hull of vertices from its first vertex and then
// inserts every remaining point by splitting the first triangle that contains it.
//
// NOTE: A point lying on an edge shared by two triangles splits the one with the lower
// index.
func NewTriangulation(vertices []r3.Vector) (*Triangulation, error) {
	h := planar.NewHull(vertices)
	if !h.IsPolygon() {
		return nil, ErrDegenerateHull
	}

	numVertices := len(vertices)
	// Each inserted point adds two triangles to the m-2 of the fan.
	numTriangles := 2*numVertices - h.NumVertices() - 2
	tr := &Triangulation{
		Vertices:  vertices,
		Hull:      h,
		Triangles: make([][3]int, 0, numTriangles),
	}

	hv := h.Vertices
	for i := 1; i < len(hv)-1; i++ {
		tr.Triangles = append(tr.Triangles, [3]int{hv[0], hv[i], hv[i+1]})
	}

	onHull := h.VertexSet()
	for v := range numVertices {
		if onHull[v] {
			continue
		}
		tIdx := tr.locate(vertices[v])
		if tIdx < 0 {
			tr.Dropped = append(tr.Dropped, v)
			continue
		}
		tr.split(tIdx, v)
	}

	tr.buildIncidence()
	return tr, nil
}

func (tr *Triangulation) locate(p r3.Vector) int {
	for i := range tr.Triangles {
		a, b, c := tr.TriangleVertices(i)
		if geom.TriangleContains2D(a, b, c, p) {
			return i
		}
	}
	return -1
}

func (tr *Triangulation) split(tIdx int, v int) {
	t := tr.Triangles[tIdx]
	tr.Triangles[tIdx] = [3]int{t[0], t[1], v}
	tr.Triangles = append(tr.Triangles,
		[3]int{t[1], t[2], v},
		[3]int{t[2], t[0], v},
	)
}

func (tr *Triangulation) buildIncidence() {
	numVertices := len(tr.Vertices)
	numTriangles := len(tr.Triangles)
	tr.IncidentTriangleIndices = make([]int, numTriangles*3)
	tr.IncidentTriangleOffsets = make([]int, numVertices+1)

	for _, t := range tr.Triangles {
		for _, v := range t {
			tr.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		tr.IncidentTriangleOffsets[i+1] += tr.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, tr.IncidentTriangleOffsets[:numVertices])
	for i, t := range tr.Triangles {
		for _, v := range t {
			tr.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for v := range numVertices {
		sortIncidentTriangleIndicesCCW(v, tr.IncidentTriangles(v), tr.Triangles)
	}
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	// An open fan starts at the triangle no other one precedes.
	for i := range n {
		first := true
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		for j := range n {
			if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				first = false
				break
			}
		}
		if first {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			nxt := NextVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package spatial builds the convex hull of a point set in space by incremental
// insertion.
package spatial

import (
	"errors"
	"math"
	"slices"

	"github.com/2dChan/convexhull/geom"
	"github.com/golang/geo/r3"
)

const (
	seedTolerance = 1e-9
)

var (
	ErrInsufficientPoints = errors.New("spatial: insufficient points for hull (minimum 4 required)")
	ErrDegenerateSeed     = errors.New("spatial: all points are coplanar")
)

// Mesh is a closed, outward-oriented triangulated convex hull.
type Mesh struct {
	Points []r3.Vector
	Faces  []Face
	// Seed holds the tetrahedron the hull was grown from.
	Seed [4]int
	// Centroid of the seed tetrahedron. It lies strictly inside the hull.
	Centroid r3.Vector
}

func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

func (m *Mesh) FaceVertices(fIdx int) (r3.Vector, r3.Vector, r3.Vector) {
	if fIdx < 0 || fIdx >= len(m.Faces) {
		panic("FaceVertices: fIdx out of bounds")
	}
	f := m.Faces[fIdx]
	return m.Points[f.V[0]], m.Points[f.V[1]], m.Points[f.V[2]]
}

// Vertices returns the sorted indices of the points used by at least one face.
func (m *Mesh) Vertices() []int {
	vs := make([]int, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		vs = append(vs, f.V[:]...)
	}
	slices.Sort(vs)
	return slices.Compact(vs)
}

// Contains reports whether p lies inside the hull or within eps of its boundary.
func (m *Mesh) Contains(p r3.Vector, eps float64) bool {
	for _, f := range m.Faces {
		if f.Plane.SignedDistance(p) > eps*f.Plane.Normal.Norm() {
			return false
		}
	}
	return true
}

// Area returns the surface area of the hull.
func (m *Mesh) Area() float64 {
	area := 0.0
	for _, f := range m.Faces {
		area += f.Plane.Normal.Norm() / 2
	}
	return area
}

// Volume returns the volume enclosed by the hull.
func (m *Mesh) Volume() float64 {
	vol := 0.0
	for i := range m.Faces {
		a, b, c := m.FaceVertices(i)
		vol += a.Dot(b.Cross(c))
	}
	return vol / 6
}

// NewMesh computes the convex hull of points. Points are inserted in ascending (x, y)
// order into a tetrahedron formed by the first four points in that order that are not
// coplanar.
//
// NOTE: Points on the plane of an existing face are not visible from it, so a point on
// the hull boundary may be absorbed without becoming a vertex.
func NewMesh(points []r3.Vector, setters ...MeshOption) (*Mesh, error) {
	opts := MeshOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(points) < 4 {
		return nil, ErrInsufficientPoints
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return geom.CompareXY(points[a], points[b])
	})

	seed, err := findSeed(points, order)
	if err != nil {
		return nil, err
	}

	b := newMeshBuilder(points, seed, opts.Eps)
	for _, v := range order {
		if v == seed[0] || v == seed[1] || v == seed[2] || v == seed[3] {
			continue
		}
		b.insert(v)
	}

	return &Mesh{
		Points:   points,
		Faces:    b.faces,
		Seed:     seed,
		Centroid: b.centroid,
	}, nil
}

// findSeed picks, in the given order, a first point, the first point distinct from
// it, the first point not collinear with both and the first point off their plane.
//
// NOTE: Distances below seedTolerance times the largest coordinate magnitude and
// angle sines below seedTolerance count as zero.
func findSeed(points []r3.Vector, order []int) ([4]int, error) {
	var seed [4]int
	seed[0] = order[0]
	p0 := points[seed[0]]

	scale := 0.0
	for _, p := range points {
		scale = max(scale, math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z))
	}
	minDist := seedTolerance * scale

	chosen := 1
	next := func(ok func(p r3.Vector) bool) (int, bool) {
		for _, v := range order {
			if slices.Contains(seed[:chosen], v) {
				continue
			}
			if ok(points[v]) {
				chosen++
				return v, true
			}
		}
		return 0, false
	}

	var found bool
	if seed[1], found = next(func(p r3.Vector) bool {
		return p.Distance(p0) > minDist
	}); !found {
		return seed, ErrDegenerateSeed
	}
	p1 := points[seed[1]]
	d1 := p1.Sub(p0)

	if seed[2], found = next(func(p r3.Vector) bool {
		d2 := p.Sub(p0)
		return d1.Cross(d2).Norm() > seedTolerance*d1.Norm()*d2.Norm()
	}); !found {
		return seed, ErrDegenerateSeed
	}
	pl := geom.NewPlane(p0, p1, points[seed[2]])
	n := pl.Normal.Norm()

	if seed[3], found = next(func(p r3.Vector) bool {
		return math.Abs(pl.SignedDistance(p)) > minDist*n
	}); !found {
		return seed, ErrDegenerateSeed
	}
	return seed, nil
}

// meshBuilder grows the hull one point at a time. Its buffers are reused across
// insertions.
type meshBuilder struct {
	points   []r3.Vector
	centroid r3.Vector
	eps      float64

	faces []Face
	kept  []Face

	edges     []edgeEntry
	edgeIndex map[edgeKey]int
}

func newMeshBuilder(points []r3.Vector, seed [4]int, eps float64) *meshBuilder {
	c := geom.Centroid(points[seed[0]], points[seed[1]], points[seed[2]], points[seed[3]])
	b := &meshBuilder{
		points:    points,
		centroid:  c,
		eps:       eps,
		edgeIndex: make(map[edgeKey]int),
	}

	b.faces = append(b.faces,
		newFace(points, seed[0], seed[1], seed[2], b.centroid),
		newFace(points, seed[0], seed[1], seed[3], b.centroid),
		newFace(points, seed[0], seed[2], seed[3], b.centroid),
		newFace(points, seed[1], seed[2], seed[3], b.centroid),
	)
	return b
}

func (b *meshBuilder) isVisible(f Face, p r3.Vector) bool {
	return f.Plane.SignedDistance(p) > b.eps*f.Plane.Normal.Norm()
}

// insert adds point v to the hull:
//  1. Splits faces into those visible from v and the rest
//  2. Counts the edges of the visible faces to find the horizon
//  3. Replaces the visible faces with faces joining each horizon edge to v
func (b *meshBuilder) insert(v int) {
	p := b.points[v]

	b.kept = b.kept[:0]
	b.edges = b.edges[:0]
	clear(b.edgeIndex)

	for _, f := range b.faces {
		if !b.isVisible(f, p) {
			b.kept = append(b.kept, f)
			continue
		}
		for _, e := range f.Edges() {
			b.countEdge(e[0], e[1])
		}
	}

	if len(b.edges) == 0 {
		return
	}

	for _, e := range b.edges {
		if e.Count != 1 {
			continue
		}
		b.kept = append(b.kept, newFace(b.points, e.A, e.B, v, b.centroid))
	}

	b.faces, b.kept = b.kept, b.faces
}

func (b *meshBuilder) countEdge(a, c int) {
	key := newEdgeKey(a, c)
	if i, ok := b.edgeIndex[key]; ok {
		b.edges[i].Count++
		return
	}
	b.edgeIndex[key] = len(b.edges)
	b.edges = append(b.edges, edgeEntry{A: a, B: c, Count: 1})
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package convexhull

import (
	"github.com/2dChan/convexhull/planar"
	"github.com/2dChan/convexhull/spatial"
	"github.com/2dChan/convexhull/triangulate"
	"github.com/golang/geo/r3"
)

type stamp struct {
	g   *Generator
	gen uint64
}

// Generation returns the generation of the points the result was computed from.
func (s stamp) Generation() uint64 {
	return s.gen
}

// Err returns ErrStale if the points the result refers to were regenerated.
func (s stamp) Err() error {
	if s.g.gen != s.gen {
		return ErrStale
	}
	return nil
}

// Hull is a planar hull bound to one point generation.
type Hull struct {
	stamp
	hull *planar.Hull
}

// Result returns the underlying hull, or ErrStale.
func (h *Hull) Result() (*planar.Hull, error) {
	if err := h.Err(); err != nil {
		return nil, err
	}
	return h.hull, nil
}

// Polygon returns the hull vertices in counter-clockwise order.
func (h *Hull) Polygon() ([]r3.Vector, error) {
	if err := h.Err(); err != nil {
		return nil, err
	}
	return polygon(h.hull.Points, h.hull.Vertices), nil
}

// Peeling is a set of onion layers bound to one point generation.
type Peeling struct {
	stamp
	peeling *planar.Peeling
}

// Result returns the underlying peeling, or ErrStale.
func (p *Peeling) Result() (*planar.Peeling, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.peeling, nil
}

// Polygons returns the layers, outermost first, as counter-clockwise vertex lists.
func (p *Peeling) Polygons() ([][]r3.Vector, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}
	polys := make([][]r3.Vector, 0, p.peeling.NumLayers())
	for i := range p.peeling.NumLayers() {
		l, err := p.peeling.Layer(i)
		if err != nil {
			return nil, err
		}
		polys = append(polys, polygon(p.peeling.Points, l.VertexIndices()))
	}
	return polys, nil
}

// Triangulation is a planar hull triangulation bound to one point generation.
type Triangulation struct {
	stamp
	tr *triangulate.Triangulation
}

// Result returns the underlying triangulation, or ErrStale.
func (t *Triangulation) Result() (*triangulate.Triangulation, error) {
	if err := t.Err(); err != nil {
		return nil, err
	}
	return t.tr, nil
}

// Triangles returns the corner coordinates of every triangle.
func (t *Triangulation) Triangles() ([][3]r3.Vector, error) {
	if err := t.Err(); err != nil {
		return nil, err
	}
	tris := make([][3]r3.Vector, len(t.tr.Triangles))
	for i := range tris {
		a, b, c := t.tr.TriangleVertices(i)
		tris[i] = [3]r3.Vector{a, b, c}
	}
	return tris, nil
}

// Edges returns the endpoint coordinates of every triangulation edge once.
func (t *Triangulation) Edges() ([][2]r3.Vector, error) {
	if err := t.Err(); err != nil {
		return nil, err
	}
	idx := t.tr.Edges()
	edges := make([][2]r3.Vector, len(idx))
	for i, e := range idx {
		edges[i] = [2]r3.Vector{t.tr.Vertices[e[0]], t.tr.Vertices[e[1]]}
	}
	return edges, nil
}

// Mesh is a spatial hull bound to one point generation.
type Mesh struct {
	stamp
	mesh *spatial.Mesh
}

// Result returns the underlying mesh, or ErrStale.
func (m *Mesh) Result() (*spatial.Mesh, error) {
	if err := m.Err(); err != nil {
		return nil, err
	}
	return m.mesh, nil
}

// Triangles returns the corner coordinates of every face, wound counter-clockwise when
// seen from outside.
func (m *Mesh) Triangles() ([][3]r3.Vector, error) {
	if err := m.Err(); err != nil {
		return nil, err
	}
	tris := make([][3]r3.Vector, m.mesh.NumFaces())
	for i := range tris {
		a, b, c := m.mesh.FaceVertices(i)
		tris[i] = [3]r3.Vector{a, b, c}
	}
	return tris, nil
}

func polygon(points []r3.Vector, idx []int) []r3.Vector {
	poly := make([]r3.Vector, len(idx))
	for i, v := range idx {
		poly[i] = points[v]
	}
	return poly
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package spatial

import (
	"github.com/2dChan/convexhull/geom"
	"github.com/golang/geo/r3"
)

// Face is a triangle of a Mesh. Its plane normal points out of the hull and the
// vertices wind counter-clockwise when seen from outside.
type Face struct {
	V     [3]int
	Plane geom.Plane
}

// Edges returns the directed edges of the face in winding order.
func (f Face) Edges() [3][2]int {
	return [3][2]int{
		{f.V[0], f.V[1]},
		{f.V[1], f.V[2]},
		{f.V[2], f.V[0]},
	}
}

// newFace builds the face a-b-c, reversing its winding when the reference point
// lies on its positive side.
func newFace(points []r3.Vector, a, b, c int, ref r3.Vector) Face {
	f := Face{
		V:     [3]int{a, b, c},
		Plane: geom.NewPlane(points[a], points[b], points[c]),
	}
	if f.Plane.SignedDistance(ref) > 0 {
		f.V[1], f.V[2] = f.V[2], f.V[1]
		f.Plane = f.Plane.Flip()
	}
	return f
}

// edgeKey identifies an undirected edge by its ordered endpoint indices.
type edgeKey [2]int

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// edgeEntry is an edge of the visible region together with its occurrence count.
// An edge is a horizon edge if it appears exactly once.
type edgeEntry struct {
	A, B  int
	Count int
}

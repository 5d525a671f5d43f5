// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Layer represents one onion layer. It is a view structure for accessing a layer in a
// Peeling. Layer 0 is the convex hull of the whole point set.
type Layer struct {
	idx int
	p   *Peeling
}

// Index returns the depth of the layer.
func (l Layer) Index() int {
	return l.idx
}

// NumVertices returns the number of vertices in the layer.
func (l Layer) NumVertices() int {
	return l.p.LayerOffsets[l.idx+1] - l.p.LayerOffsets[l.idx]
}

// VertexIndices returns the indices of the layer vertices in the Peeling's Points,
// sorted in counter-clockwise order.
func (l Layer) VertexIndices() []int {
	return l.p.LayerVertices[l.p.LayerOffsets[l.idx]:l.p.LayerOffsets[l.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (l Layer) Vertex(i int) (r3.Vector, error) {
	start := l.p.LayerOffsets[l.idx]
	end := l.p.LayerOffsets[l.idx+1]
	if i < 0 || i >= end-start {
		return r3.Vector{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return l.p.Points[l.p.LayerVertices[start+i]], nil
}

// Hull returns the layer as a standalone Hull sharing the Peeling's Points.
func (l Layer) Hull() *Hull {
	return &Hull{Points: l.p.Points, Vertices: l.VertexIndices()}
}

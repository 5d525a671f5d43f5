// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Peeling is the sequence of nested convex layers of a point set, outermost first.
type Peeling struct {
	Points []r3.Vector

	// NOTE: Sort in CCW per Layer.
	LayerVertices []int
	LayerOffsets  []int
	// Residual holds the two or fewer points left once no further layer can be peeled.
	Residual []int
}

// NumLayers returns the number of peeled layers.
func (p *Peeling) NumLayers() int {
	return len(p.LayerOffsets) - 1
}

// Layer returns a view of the i-th layer, counted from the outside.
// It returns an error if the index is out of range.
func (p *Peeling) Layer(i int) (Layer, error) {
	if i < 0 || i >= p.NumLayers() {
		return Layer{}, fmt.Errorf("Layer: index %d out of range [0 %d)", i, p.NumLayers())
	}
	return Layer{idx: i, p: p}, nil
}

// NewPeeling strips convex hulls off points until two or fewer points remain.
// Every point ends up in exactly one layer or in Residual.
func NewPeeling(points []r3.Vector) *Peeling {
	p := &Peeling{
		Points:       points,
		LayerOffsets: []int{0},
	}

	used := make([]bool, len(points))
	residual := sortedIndices(points, nil)
	for len(residual) > 2 {
		layer := monotoneChain(points, residual)
		for _, v := range layer {
			used[v] = true
		}
		p.LayerVertices = append(p.LayerVertices, layer...)
		p.LayerOffsets = append(p.LayerOffsets, len(p.LayerVertices))

		// Filtering keeps the residual sorted.
		next := residual[:0]
		for _, v := range residual {
			if !used[v] {
				next = append(next, v)
			}
		}
		residual = next
	}
	p.Residual = residual

	return p
}

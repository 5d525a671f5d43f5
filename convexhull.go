// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package convexhull generates point sets and computes their planar hulls, onion peels,
// planar triangulations and spatial hulls.
package convexhull

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/convexhull/planar"
	"github.com/2dChan/convexhull/spatial"
	"github.com/2dChan/convexhull/triangulate"
	"github.com/2dChan/convexhull/utils"
	"github.com/golang/geo/r3"
)

const (
	defaultSeed      = 1
	defaultDimension = 3
)

// ErrStale is returned when a result is accessed after its points were regenerated.
var ErrStale = errors.New("convexhull: result belongs to an earlier point generation")

type GeneratorOptions struct {
	Seed      int64
	Dimension int
}

type GeneratorOption func(*GeneratorOptions) error

func WithSeed(seed int64) GeneratorOption {
	return func(o *GeneratorOptions) error {
		o.Seed = seed
		return nil
	}
}

func WithDimension(dim int) GeneratorOption {
	return func(o *GeneratorOptions) error {
		if dim != 2 && dim != 3 {
			return fmt.Errorf("WithDimension: dimension %d not in {2, 3}", dim)
		}
		o.Dimension = dim
		return nil
	}
}

// Generator owns the points of one generation cycle. Every result it returns refers
// to those points by index and becomes stale once GeneratePoints is called again.
type Generator struct {
	opts   GeneratorOptions
	points []r3.Vector
	gen    uint64
}

func NewGenerator(setters ...GeneratorOption) (*Generator, error) {
	opts := GeneratorOptions{
		Seed:      defaultSeed,
		Dimension: defaultDimension,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	return &Generator{opts: opts}, nil
}

// Generation returns the number of completed GeneratePoints calls.
func (g *Generator) Generation() uint64 {
	return g.gen
}

// Points returns a copy of the current points.
func (g *Generator) Points() []r3.Vector {
	return slices.Clone(g.points)
}

// GeneratePoints replaces the current points with cnt random points inside the ball
// (or disc, for dimension 2) of the given radius around center, sorted by (x, y).
// All results produced from the previous points become stale.
func (g *Generator) GeneratePoints(center r3.Vector, radius float64, cnt int) ([]r3.Vector, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("GeneratePoints: radius %v must be positive and finite", radius)
	}
	if cnt < 0 {
		return nil, fmt.Errorf("GeneratePoints: count %d must be non-negative", cnt)
	}

	seed := g.opts.Seed + int64(g.gen)
	if g.opts.Dimension == 2 {
		g.points = utils.GenerateRandomDiscPoints(center, radius, cnt, seed)
	} else {
		g.points = utils.GenerateRandomPoints(center, radius, cnt, seed)
	}
	g.gen++

	return g.Points(), nil
}

func (g *Generator) stamp() stamp {
	return stamp{g: g, gen: g.gen}
}

// PlanarHull computes the convex hull of the current points projected onto the
// xy-plane.
func (g *Generator) PlanarHull() *Hull {
	return &Hull{stamp: g.stamp(), hull: planar.NewHull(g.points)}
}

// OnionPeel computes the onion layers of the current points projected onto the
// xy-plane.
func (g *Generator) OnionPeel() *Peeling {
	return &Peeling{stamp: g.stamp(), peeling: planar.NewPeeling(g.points)}
}

// TriangulatePlanarHull triangulates the planar hull of the current points using every
// point as a vertex.
func (g *Generator) TriangulatePlanarHull() (*Triangulation, error) {
	tr, err := triangulate.NewTriangulation(g.points)
	if err != nil {
		return nil, err
	}
	return &Triangulation{stamp: g.stamp(), tr: tr}, nil
}

// SpatialHull computes the convex hull mesh of the current points.
func (g *Generator) SpatialHull(setters ...spatial.MeshOption) (*Mesh, error) {
	m, err := spatial.NewMesh(g.points, setters...)
	if err != nil {
		return nil, err
	}
	return &Mesh{stamp: g.stamp(), mesh: m}, nil
}

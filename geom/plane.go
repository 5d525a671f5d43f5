// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "github.com/golang/geo/r3"

// Plane is the set of points x satisfying Normal·x + Offset = 0.
// The normal is not normalized.
type Plane struct {
	Normal r3.Vector
	Offset float64
}

// NewPlane returns the plane through a, b and c whose normal follows the right-hand
// rule for the winding a-b-c.
func NewPlane(a, b, c r3.Vector) Plane {
	n := b.Sub(a).Cross(c.Sub(a))
	return Plane{Normal: n, Offset: -n.Dot(a)}
}

// SignedDistance evaluates Normal·p + Offset. A positive value means p lies on the
// side the normal points to.
func (pl Plane) SignedDistance(p r3.Vector) float64 {
	return pl.Normal.Dot(p) + pl.Offset
}

// Flip returns the same plane with the opposite orientation.
func (pl Plane) Flip() Plane {
	return Plane{Normal: pl.Normal.Mul(-1), Offset: -pl.Offset}
}

// IsDegenerate reports whether the plane was built from collinear points.
func (pl Plane) IsDegenerate() bool {
	return pl.Normal.Norm2() == 0
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the predicates shared by the planar and spatial hull builders.
package geom

import (
	"cmp"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// XY returns the projection of p onto the xy-plane.
func XY(p r3.Vector) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// CompareXY orders points by ascending x, ties broken by ascending y.
// Points with equal x and y compare equal regardless of z.
func CompareXY(a, b r3.Vector) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Orientation2D returns twice the signed area of the triangle o-p-q in the xy-plane.
// The result is positive for a counter-clockwise turn, negative for a clockwise turn
// and zero when the points are collinear.
func Orientation2D(o, p, q r3.Vector) float64 {
	oo := XY(o)
	return XY(p).Sub(oo).Cross(XY(q).Sub(oo))
}

// TriangleArea2D returns the signed area of the triangle a-b-c in the xy-plane.
func TriangleArea2D(a, b, c r3.Vector) float64 {
	return Orientation2D(a, b, c) / 2
}

// TriangleContains2D reports whether p lies inside or on the boundary of the triangle
// t1-t2-t3 projected onto the xy-plane.
//
// NOTE: The triangle must not be collinear in xy.
func TriangleContains2D(t1, t2, t3, p r3.Vector) bool {
	o := XY(t1)
	v0 := XY(t3).Sub(o)
	v1 := XY(t2).Sub(o)
	v2 := XY(p).Sub(o)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d02 := v0.Dot(v2)
	d11 := v1.Dot(v1)
	d12 := v1.Dot(v2)

	// Barycentric coordinates scaled by the (non-negative) denominator, so the
	// boundary test stays exact for integer coordinates.
	denom := d00*d11 - d01*d01
	u := d11*d02 - d01*d12
	v := d00*d12 - d01*d02
	return u >= 0 && v >= 0 && u+v <= denom
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(points ...r3.Vector) r3.Vector {
	var sum r3.Vector
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

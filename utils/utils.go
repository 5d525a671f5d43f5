// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded point samplers for convex hull construction.

package utils

import (
	"math"
	"math/rand"
	"slices"

	"github.com/2dChan/convexhull/geom"
	"github.com/golang/geo/r3"
)

// GenerateRandomPoints generates cnt random points inside the ball of the given radius
// around center. The points are sorted by ascending x, ties broken by ascending y.
// The seed parameter ensures reproducibility. It panics if radius is negative, NaN or
// infinite.
func GenerateRandomPoints(center r3.Vector, radius float64, cnt int, seed int64) []r3.Vector {
	return generate(center, radius, cnt, seed, true)
}

// GenerateRandomDiscPoints is like GenerateRandomPoints but samples the disc of the given
// radius in the plane z = center.Z.
func GenerateRandomDiscPoints(center r3.Vector, radius float64, cnt int, seed int64) []r3.Vector {
	return generate(center, radius, cnt, seed, false)
}

func generate(center r3.Vector, radius float64, cnt int, seed int64, spatial bool) []r3.Vector {
	if !(radius >= 0) || math.IsInf(radius, 1) {
		panic("generate: radius must be finite and non-negative")
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)
	r2 := radius * radius

	sample := func() float64 {
		return (random.Float64()*2 - 1) * radius
	}
	for i := range cnt {
		for {
			d := r3.Vector{X: sample(), Y: sample()}
			if spatial {
				d.Z = sample()
			}
			if d.Norm2() <= r2 {
				points[i] = center.Add(d)
				break
			}
		}
	}

	slices.SortStableFunc(points, geom.CompareXY)
	return points
}

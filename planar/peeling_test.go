// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"fmt"
	"testing"

	"github.com/2dChan/convexhull/utils"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewPeeling_Grid(t *testing.T) {
	// Index x*3+y, already sorted by (x, y).
	points := make([]r3.Vector, 0, 9)
	for x := range 3 {
		for y := range 3 {
			points = append(points, r3.Vector{X: float64(x), Y: float64(y)})
		}
	}
	p := NewPeeling(points)

	want := [][]int{
		{0, 6, 8, 2},
		{1, 3, 7, 5},
	}
	if got := p.NumLayers(); got != len(want) {
		t.Fatalf("p.NumLayers() = %v, want %v", got, len(want))
	}
	for i, w := range want {
		l := mustLayer(t, p, i)
		if diff := cmp.Diff(w, l.VertexIndices()); diff != "" {
			t.Errorf("p.Layer(%d).VertexIndices() mismatch (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]int{4}, p.Residual); diff != "" {
		t.Errorf("p.Residual mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPeeling_TooFewPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []r3.Vector
		want   []int
	}{
		{"empty", nil, nil},
		{"one", []r3.Vector{{X: 1}}, []int{0}},
		{"two", []r3.Vector{{X: 1}, {X: 0}}, []int{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPeeling(tt.points)
			if got := p.NumLayers(); got != 0 {
				t.Errorf("NewPeeling(%v).NumLayers() = %v, want 0", tt.points, got)
			}
			if diff := cmp.Diff(tt.want, p.Residual, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("NewPeeling(%v).Residual mismatch (-want +got):\n%s", tt.points, diff)
			}
		})
	}
}

func TestNewPeeling_Partition(t *testing.T) {
	sizes := []int{3, 10, 100, 1000}
	for _, size := range sizes {
		t.Run(fmt.Sprintf("N%d", size), func(t *testing.T) {
			points := utils.GenerateRandomDiscPoints(r3.Vector{}, 100, size, int64(size))
			p := NewPeeling(points)

			count := make([]int, len(points))
			for _, v := range p.LayerVertices {
				count[v]++
			}
			for _, v := range p.Residual {
				count[v]++
			}
			for i, c := range count {
				if c != 1 {
					t.Errorf("point %d appears %d times across layers and residual, want 1", i, c)
				}
			}
			if len(p.Residual) > 2 {
				t.Errorf("len(p.Residual) = %v, want <= 2", len(p.Residual))
			}
		})
	}
}

func TestNewPeeling_Nested(t *testing.T) {
	points := utils.GenerateRandomDiscPoints(r3.Vector{}, 100, 500, 1)
	p := NewPeeling(points)
	if p.NumLayers() < 2 {
		t.Fatalf("p.NumLayers() = %v, want >= 2", p.NumLayers())
	}

	for i := 1; i < p.NumLayers(); i++ {
		outer := mustLayer(t, p, i-1).Hull()
		inner := mustLayer(t, p, i)
		for j := range inner.NumVertices() {
			v, err := inner.Vertex(j)
			if err != nil {
				t.Fatalf("inner.Vertex(%d) error = %v, want nil", j, err)
			}
			if !outer.Contains(v) {
				t.Errorf("p.Layer(%d) vertex %d = %v outside p.Layer(%d)", i, j, v, i-1)
			}
		}
		if inner.Hull().Area() >= outer.Area() {
			t.Errorf("p.Layer(%d) area %v >= p.Layer(%d) area %v", i, inner.Hull().Area(),
				i-1, outer.Area())
		}
	}
}

func TestNewPeeling_FirstLayerIsHull(t *testing.T) {
	points := utils.GenerateRandomDiscPoints(r3.Vector{}, 100, 300, 5)
	h := NewHull(points)
	l := mustLayer(t, NewPeeling(points), 0)
	if diff := cmp.Diff(h.Vertices, l.VertexIndices()); diff != "" {
		t.Errorf("p.Layer(0).VertexIndices() mismatch with NewHull (-want +got):\n%s", diff)
	}
}

func TestPeeling_Layer(t *testing.T) {
	p := &Peeling{
		Points:        make([]r3.Vector, 5),
		LayerVertices: []int{0, 1, 2, 3},
		LayerOffsets:  []int{0, 3, 4},
	}
	tests := []struct {
		name    string
		in      int
		wantErr bool
	}{
		{"first", 0, false},
		{"last", 1, false},
		{"negative", -1, true},
		{"past end", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := p.Layer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("p.Layer(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && l.Index() != tt.in {
				t.Errorf("p.Layer(%d).Index() = %v, want %v", tt.in, l.Index(), tt.in)
			}
		})
	}
}

// Layer

func TestLayer_Vertex(t *testing.T) {
	p := &Peeling{
		Points:        []r3.Vector{{X: 0}, {X: 1}, {X: 2}, {X: 3}},
		LayerVertices: []int{3, 1, 2, 0},
		LayerOffsets:  []int{0, 3, 4},
	}
	l := mustLayer(t, p, 0)
	if got := l.NumVertices(); got != 3 {
		t.Errorf("l.NumVertices() = %v, want 3", got)
	}
	for i, want := range []r3.Vector{{X: 3}, {X: 1}, {X: 2}} {
		got, err := l.Vertex(i)
		if err != nil {
			t.Fatalf("l.Vertex(%d) error = %v, want nil", i, err)
		}
		if got != want {
			t.Errorf("l.Vertex(%d) = %v, want %v", i, got, want)
		}
	}
	for _, in := range []int{-1, 3} {
		if _, err := l.Vertex(in); err == nil {
			t.Errorf("l.Vertex(%d) error = nil, want non-nil", in)
		}
	}
}

// Benchmarks

func BenchmarkNewPeeling(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomDiscPoints(r3.Vector{}, 100, pointsCnt, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				NewPeeling(points)
			}
		})
	}
}

// Helpers

func mustLayer(t *testing.T, p *Peeling, i int) Layer {
	t.Helper()
	l, err := p.Layer(i)
	if err != nil {
		t.Fatalf("p.Layer(%d) error = %v, want nil", i, err)
	}
	return l
}

// Copyright 2025 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package p3

import (
	"testing"

	"github.com/golang/geo/r3"
)

// cubePoints returns the corners of the axis-aligned cube [0,1]³, bottom
// face first.
func cubePoints() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
}

// tetraPoints returns the corners of a tetrahedron.
func tetraPoints() []r3.Vector {
	return []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}
}

// buildHull returns the hull of the given points, failing the test if the
// result is structurally invalid.
func buildHull(t *testing.T, points []r3.Vector) *Polyhedron {
	t.Helper()
	p := New()
	p.AddPoints(points)
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v after adding %v", err, points)
	}
	return p
}

func TestEmptyPolyhedron(t *testing.T) {
	p := New()
	if !p.Empty() {
		t.Error("Empty() = false, want true")
	}
	if p.Contains(r3.Vector{}) {
		t.Error("Contains(origin) = true on an empty polyhedron")
	}
	if !p.Bounds().IsEmpty() {
		t.Errorf("Bounds() = %v, want empty", p.Bounds())
	}
	if p.FrontVertex() != nil || p.FrontEdge() != nil || p.FrontFace() != nil {
		t.Error("front accessors of an empty polyhedron are not nil")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSinglePoint(t *testing.T) {
	point := r3.Vector{X: 1, Y: 2, Z: 3}
	p := New()
	if !p.AddPoint(point) {
		t.Fatal("AddPoint(first point) = false, want true")
	}
	if !p.IsPoint() {
		t.Error("IsPoint() = false, want true")
	}
	if !p.Contains(point) {
		t.Error("Contains(the point) = false, want true")
	}
	if p.Contains(r3.Vector{X: 1, Y: 2, Z: 4}) {
		t.Error("Contains(another point) = true, want false")
	}

	// A duplicate must not change anything.
	if p.AddPoint(point) {
		t.Error("AddPoint(duplicate) = true, want false")
	}
	if p.VertexCount() != 1 {
		t.Errorf("VertexCount() = %d, want 1", p.VertexCount())
	}
	if !p.Bounds().ApproxEqual(RectFromPoint(point)) {
		t.Errorf("Bounds() = %v, want a degenerate box at %v", p.Bounds(), point)
	}
}

func TestEdgeState(t *testing.T) {
	a := r3.Vector{X: 0, Y: 0, Z: 0}
	b := r3.Vector{X: 4, Y: 0, Z: 0}
	p := New()
	p.AddPoint(a)
	if !p.AddPoint(b) {
		t.Fatal("AddPoint(second point) = false, want true")
	}
	if !p.IsEdge() {
		t.Error("IsEdge() = false, want true")
	}
	if p.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", p.EdgeCount())
	}

	if !p.Contains(r3.Vector{X: 2, Y: 0, Z: 0}) {
		t.Error("Contains(midpoint) = false, want true")
	}
	if p.Contains(r3.Vector{X: 5, Y: 0, Z: 0}) {
		t.Error("Contains(beyond endpoint) = true, want false")
	}
	if p.Contains(r3.Vector{X: 2, Y: 1, Z: 0}) {
		t.Error("Contains(off the line) = true, want false")
	}

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestCollinearThirdPoint(t *testing.T) {
	p := New()
	p.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	p.AddPoint(r3.Vector{X: 2, Y: 0, Z: 0})

	// Interior of the segment: no change.
	if p.AddPoint(r3.Vector{X: 1, Y: 0, Z: 0}) {
		t.Error("AddPoint(interior collinear) = true, want false")
	}
	if !p.IsEdge() {
		t.Fatal("IsEdge() = false after an interior collinear point")
	}

	// Beyond an endpoint: the edge grows, still two vertices.
	if !p.AddPoint(r3.Vector{X: 5, Y: 0, Z: 0}) {
		t.Error("AddPoint(collinear beyond endpoint) = false, want true")
	}
	if !p.IsEdge() {
		t.Fatal("IsEdge() = false after extending the edge")
	}
	if !p.Contains(r3.Vector{X: 4, Y: 0, Z: 0}) {
		t.Error("Contains(point on the extended segment) = false, want true")
	}

	// Beyond the other endpoint.
	if !p.AddPoint(r3.Vector{X: -3, Y: 0, Z: 0}) {
		t.Error("AddPoint(collinear beyond other endpoint) = false, want true")
	}
	if !p.Contains(r3.Vector{X: -2, Y: 0, Z: 0}) {
		t.Error("Contains(point on the other extension) = false, want true")
	}
	want := RectFromPoints(r3.Vector{X: -3}, r3.Vector{X: 5})
	if !p.Bounds().ApproxEqual(want) {
		t.Errorf("Bounds() = %v, want %v", p.Bounds(), want)
	}
}

func TestPolygonState(t *testing.T) {
	p := buildHull(t, []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
	})

	if !p.IsPolygon() {
		t.Fatal("IsPolygon() = false, want true")
	}
	if p.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", p.VertexCount())
	}
	if p.FaceCount() != 1 {
		t.Errorf("FaceCount() = %d, want 1", p.FaceCount())
	}

	// Coplanar interior point: no change.
	if p.AddPoint(r3.Vector{X: 1, Y: 1, Z: 0}) {
		t.Error("AddPoint(coplanar interior) = true, want false")
	}
	if p.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d after interior point, want 4", p.VertexCount())
	}

	// Coplanar exterior point: the polygon is rebuilt and grows.
	if !p.AddPoint(r3.Vector{X: 3, Y: 1, Z: 0}) {
		t.Error("AddPoint(coplanar exterior) = false, want true")
	}
	if !p.IsPolygon() {
		t.Fatal("IsPolygon() = false after coplanar growth")
	}
	if p.VertexCount() != 5 {
		t.Errorf("VertexCount() = %d, want 5", p.VertexCount())
	}
	if !p.Contains(r3.Vector{X: 2.5, Y: 1, Z: 0}) {
		t.Error("Contains(newly covered point) = false, want true")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPolygonAbsorbsCorner(t *testing.T) {
	p := buildHull(t, []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
	})
	// The far corner makes the middle vertex interior.
	if !p.AddPoint(r3.Vector{X: 1, Y: 5, Z: 0}) {
		t.Fatal("AddPoint(dominating corner) = false, want true")
	}
	if p.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", p.VertexCount())
	}
	if p.FindVertexByPosition(r3.Vector{X: 1, Y: 1, Z: 0}) != nil {
		t.Error("absorbed vertex is still present")
	}
}

func TestPolygonToPolyhedron(t *testing.T) {
	square := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}
	apex := r3.Vector{X: 1, Y: 1, Z: 2}

	// The apex lies off the polygon plane on either side; both must yield
	// the same pyramid.
	for _, a := range []r3.Vector{apex, {X: 1, Y: 1, Z: -2}} {
		p := buildHull(t, square)
		if !p.AddPoint(a) {
			t.Fatalf("AddPoint(%v) = false, want true", a)
		}
		if !p.IsPolyhedron() {
			t.Fatalf("IsPolyhedron() = false after adding apex %v", a)
		}
		if p.VertexCount() != 5 {
			t.Errorf("VertexCount() = %d, want 5", p.VertexCount())
		}
		if p.FaceCount() != 5 {
			t.Errorf("FaceCount() = %d, want 5", p.FaceCount())
		}
		if p.EdgeCount() != 8 {
			t.Errorf("EdgeCount() = %d, want 8", p.EdgeCount())
		}
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}

		inside := r3.Vector{X: 1, Y: 1, Z: a.Z / 4}
		if !p.Contains(inside) {
			t.Errorf("Contains(%v) = false, want true", inside)
		}
	}
}

func TestTetrahedron(t *testing.T) {
	p := buildHull(t, tetraPoints())

	if !p.IsPolyhedron() {
		t.Fatal("IsPolyhedron() = false, want true")
	}
	if p.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", p.VertexCount())
	}
	if p.EdgeCount() != 6 {
		t.Errorf("EdgeCount() = %d, want 6", p.EdgeCount())
	}
	if p.FaceCount() != 4 {
		t.Errorf("FaceCount() = %d, want 4", p.FaceCount())
	}

	if !p.Contains(r3.Vector{X: 0.25, Y: 0.25, Z: 0.25}) {
		t.Error("Contains(centroid) = false, want true")
	}
	if !p.Contains(r3.Vector{X: 0, Y: 0, Z: 0}) {
		t.Error("Contains(corner) = false, want true")
	}
	if p.Contains(r3.Vector{X: 1, Y: 1, Z: 1}) {
		t.Error("Contains(outside) = true, want false")
	}

	// All faces are triangles.
	for _, f := range p.Faces() {
		if f.VertexCount() != 3 {
			t.Errorf("face has %d vertices, want 3", f.VertexCount())
		}
	}
}

func TestCube(t *testing.T) {
	p := buildHull(t, cubePoints())

	if p.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d, want 8", p.VertexCount())
	}
	if p.EdgeCount() != 12 {
		t.Errorf("EdgeCount() = %d, want 12", p.EdgeCount())
	}
	if p.FaceCount() != 6 {
		t.Errorf("FaceCount() = %d, want 6", p.FaceCount())
	}
	for _, f := range p.Faces() {
		if f.VertexCount() != 4 {
			t.Errorf("cube face has %d vertices, want 4", f.VertexCount())
		}
	}

	if !p.Contains(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Error("Contains(center) = false, want true")
	}
	if !p.Contains(r3.Vector{X: 1, Y: 0.5, Z: 0.5}) {
		t.Error("Contains(face center) = false, want true")
	}
	if p.Contains(r3.Vector{X: 1.001, Y: 0.5, Z: 0.5}) {
		t.Error("Contains(just outside) = true, want false")
	}

	want := RectFromPoints(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
	if !p.Bounds().ApproxEqual(want) {
		t.Errorf("Bounds() = %v, want %v", p.Bounds(), want)
	}

	// Interior and duplicate points must not change the hull.
	for _, pt := range []r3.Vector{
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: 0.5, Z: 0.5},
	} {
		if p.AddPoint(pt) {
			t.Errorf("AddPoint(%v) = true, want false", pt)
		}
	}
	if p.VertexCount() != 8 {
		t.Errorf("VertexCount() = %d after redundant points, want 8", p.VertexCount())
	}
}

func TestFindVertexByPosition(t *testing.T) {
	p := buildHull(t, tetraPoints())

	for _, pt := range tetraPoints() {
		v := p.FindVertexByPosition(pt)
		if v == nil {
			t.Errorf("FindVertexByPosition(%v) = nil, want a vertex", pt)
			continue
		}
		if !pointsEqual(v.Position(), pt) {
			t.Errorf("FindVertexByPosition(%v).Position() = %v", pt, v.Position())
		}
	}
	if v := p.FindVertexByPosition(r3.Vector{X: 9, Y: 9, Z: 9}); v != nil {
		t.Errorf("FindVertexByPosition(absent) = %v, want nil", v)
	}
}

func TestClear(t *testing.T) {
	p := buildHull(t, cubePoints())
	p.Clear()

	if !p.Empty() {
		t.Error("Empty() = false after Clear")
	}
	if !p.Bounds().IsEmpty() {
		t.Errorf("Bounds() = %v after Clear, want empty", p.Bounds())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v after Clear, want nil", err)
	}

	// The polyhedron is reusable after Clear.
	p.AddPoints(tetraPoints())
	if !p.IsPolyhedron() {
		t.Error("IsPolyhedron() = false after rebuilding a cleared polyhedron")
	}
}

func TestMeshConnectivity(t *testing.T) {
	p := buildHull(t, cubePoints())

	// Every half edge pairs with its twin across the shared edge.
	for _, e := range p.Edges() {
		if !e.FullySpecified() {
			t.Fatal("polyhedron edge is half specified")
		}
		first, second := e.FirstEdge(), e.SecondEdge()
		if first.Twin() != second || second.Twin() != first {
			t.Error("half edge twins are not symmetric")
		}
		if first.Origin() != second.Destination() || second.Origin() != first.Destination() {
			t.Error("half edge endpoints do not mirror each other")
		}
		if e.FirstFace() == e.SecondFace() {
			t.Error("edge is bounded by a single face")
		}
	}

	// Boundary walks agree with face vertex counts and close on themselves.
	for _, f := range p.Faces() {
		count := 0
		h := f.Boundary()
		for {
			if h.Face() != f {
				t.Fatal("boundary half edge points at a foreign face")
			}
			if h.Next().Previous() != h {
				t.Fatal("boundary links are not symmetric")
			}
			count++
			h = h.Next()
			if h == f.Boundary() {
				break
			}
		}
		if count != f.VertexCount() {
			t.Errorf("boundary length %d does not match VertexCount() %d", count, f.VertexCount())
		}
	}

	// Each vertex can reach all faces incident to it.
	for v := p.FrontVertex(); ; {
		if v.Leaving() == nil || v.Leaving().Origin() != v {
			t.Fatal("leaving half edge is not anchored at its vertex")
		}
		v = v.Next()
		if v == p.FrontVertex() {
			break
		}
	}
}

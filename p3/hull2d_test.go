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
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
)

// containsAll reports whether hull contains every given position within
// epsilon, in any rotation.
func containsAll(hull []r3.Vector, positions ...r3.Vector) bool {
	for _, p := range positions {
		found := false
		for _, h := range hull {
			if pointsEqual(h, p) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestConvexHull2DSquare(t *testing.T) {
	corners := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: 2, Z: 0},
	}
	points := append([]r3.Vector{}, corners...)
	// Interior, edge-interior and duplicate points must not survive.
	points = append(points,
		r3.Vector{X: 1, Y: 1, Z: 0},
		r3.Vector{X: 1, Y: 0, Z: 0},
		r3.Vector{X: 2, Y: 2, Z: 0},
	)
	normal := r3.Vector{X: 0, Y: 0, Z: 1}

	hull := convexHull2D(points, normal)
	if len(hull) != 4 {
		t.Fatalf("convexHull2D returned %d points, want 4: %v", len(hull), hull)
	}
	if !containsAll(hull, corners...) {
		t.Errorf("convexHull2D = %v, want the four corners %v", hull, corners)
	}
}

func TestConvexHull2DWinding(t *testing.T) {
	normal := r3.Vector{X: 0, Y: 0, Z: 1}
	hull := convexHull2D([]r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}, normal)

	if len(hull) != 4 {
		t.Fatalf("convexHull2D returned %d points, want 4", len(hull))
	}
	// Consecutive edges must turn counter-clockwise about the normal.
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		c := hull[(i+2)%len(hull)]
		if normal.Dot(b.Sub(a).Cross(c.Sub(b))) <= 0 {
			t.Fatalf("hull %v does not wind counter-clockwise about %v", hull, normal)
		}
	}
}

func TestConvexHull2DTiltedPlane(t *testing.T) {
	normal := r3.Vector{X: 1, Y: 1, Z: 1}.Normalize()
	u, w := planeBasis(normal)

	rng := rand.New(rand.NewSource(42))
	var points []r3.Vector
	for i := 0; i < 50; i++ {
		points = append(points, u.Mul(rng.Float64()*10-5).Add(w.Mul(rng.Float64()*10-5)))
	}

	hull := convexHull2D(points, normal)
	if len(hull) < 3 {
		t.Fatalf("convexHull2D returned %d points, want at least 3", len(hull))
	}
	for _, p := range points {
		if !polygonContainsPoint(p, hull, normal) {
			t.Errorf("input point %v lies outside its own hull", p)
		}
	}
}

func TestConvexHull2DDegenerate(t *testing.T) {
	normal := r3.Vector{X: 0, Y: 0, Z: 1}
	collinear := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}
	if hull := convexHull2D(collinear, normal); len(hull) >= 3 {
		t.Errorf("convexHull2D of collinear points returned %d points, want fewer than 3", len(hull))
	}
}

func TestPlaneBasis(t *testing.T) {
	normals := []r3.Vector{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
		r3.Vector{X: 1, Y: 2, Z: 3}.Normalize(),
	}
	for _, n := range normals {
		u, w := planeBasis(n)
		if got := u.Dot(n); got > epsilon || got < -epsilon {
			t.Errorf("planeBasis(%v): u is not orthogonal to the normal (dot = %v)", n, got)
		}
		if got := w.Dot(n); got > epsilon || got < -epsilon {
			t.Errorf("planeBasis(%v): w is not orthogonal to the normal (dot = %v)", n, got)
		}
		if !pointsEqual(u.Cross(w), n) {
			t.Errorf("planeBasis(%v): u×w = %v, want the normal", n, u.Cross(w))
		}
	}
}

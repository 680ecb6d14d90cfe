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

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Error("EmptyRect().IsEmpty() = false, want true")
	}
	if r.ContainsPoint(r3.Vector{}) {
		t.Error("EmptyRect().ContainsPoint(origin) = true, want false")
	}
}

func TestRectFromPoint(t *testing.T) {
	p := r3.Vector{X: 1, Y: -2, Z: 3}
	r := RectFromPoint(p)
	if r.IsEmpty() {
		t.Error("RectFromPoint().IsEmpty() = true, want false")
	}
	if !r.ContainsPoint(p) {
		t.Errorf("RectFromPoint(%v) does not contain its own point", p)
	}
	if !pointsEqual(r.Lo(), p) || !pointsEqual(r.Hi(), p) {
		t.Errorf("RectFromPoint(%v) = %v, want a degenerate box at the point", p, r)
	}
}

func TestRectAddPoint(t *testing.T) {
	r := EmptyRect()
	r = r.AddPoint(r3.Vector{X: 1, Y: 1, Z: 1})
	r = r.AddPoint(r3.Vector{X: -1, Y: 2, Z: 0})

	wantLo := r3.Vector{X: -1, Y: 1, Z: 0}
	wantHi := r3.Vector{X: 1, Y: 2, Z: 1}
	if !pointsEqual(r.Lo(), wantLo) {
		t.Errorf("Lo() = %v, want %v", r.Lo(), wantLo)
	}
	if !pointsEqual(r.Hi(), wantHi) {
		t.Errorf("Hi() = %v, want %v", r.Hi(), wantHi)
	}
	if !r.ContainsPoint(r3.Vector{X: 0, Y: 1.5, Z: 0.5}) {
		t.Error("ContainsPoint(interior) = false, want true")
	}
	if r.ContainsPoint(r3.Vector{X: 0, Y: 0, Z: 0}) {
		t.Error("ContainsPoint(exterior) = true, want false")
	}
}

func TestRectFromPoints(t *testing.T) {
	points := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 3, Y: 1, Z: -1},
		{X: 1, Y: 5, Z: 2},
	}
	r := RectFromPoints(points...)
	for _, p := range points {
		if !r.ContainsPoint(p) {
			t.Errorf("RectFromPoints does not contain input point %v", p)
		}
	}
	want := rectFromExtents(0, 3, 0, 5, -1, 2)
	if !r.ApproxEqual(want) {
		t.Errorf("RectFromPoints(...) = %v, want %v", r, want)
	}

	if !RectFromPoints().IsEmpty() {
		t.Error("RectFromPoints().IsEmpty() = false, want true")
	}
}

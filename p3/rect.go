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
	"fmt"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// Rect represents a closed axis-aligned box in R³, as three intervals.
type Rect struct {
	X, Y, Z r1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect {
	return Rect{r1.EmptyInterval(), r1.EmptyInterval(), r1.EmptyInterval()}
}

// RectFromPoint returns the degenerate rectangle containing exactly p.
func RectFromPoint(p r3.Vector) Rect {
	return Rect{
		X: r1.Interval{Lo: p.X, Hi: p.X},
		Y: r1.Interval{Lo: p.Y, Hi: p.Y},
		Z: r1.Interval{Lo: p.Z, Hi: p.Z},
	}
}

// RectFromPoints returns the smallest rectangle containing all given points.
func RectFromPoints(points ...r3.Vector) Rect {
	if len(points) == 0 {
		return EmptyRect()
	}
	r := RectFromPoint(points[0])
	for _, p := range points[1:] {
		r = r.AddPoint(p)
	}
	return r
}

// rectFromExtents builds a Rect directly from per-axis extents.
func rectFromExtents(xLo, xHi, yLo, yHi, zLo, zHi float64) Rect {
	return Rect{
		X: r1.Interval{Lo: xLo, Hi: xHi},
		Y: r1.Interval{Lo: yLo, Hi: yHi},
		Z: r1.Interval{Lo: zLo, Hi: zHi},
	}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.X.IsEmpty() || r.Y.IsEmpty() || r.Z.IsEmpty()
}

// AddPoint returns the rectangle expanded to include p.
func (r Rect) AddPoint(p r3.Vector) Rect {
	if r.IsEmpty() {
		return RectFromPoint(p)
	}
	return Rect{
		X: r.X.AddPoint(p.X),
		Y: r.Y.AddPoint(p.Y),
		Z: r.Z.AddPoint(p.Z),
	}
}

// ContainsPoint reports whether the rectangle contains p.
func (r Rect) ContainsPoint(p r3.Vector) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y) && r.Z.Contains(p.Z)
}

// Lo returns the corner of the rectangle with minimal coordinates.
func (r Rect) Lo() r3.Vector {
	return r3.Vector{X: r.X.Lo, Y: r.Y.Lo, Z: r.Z.Lo}
}

// Hi returns the corner of the rectangle with maximal coordinates.
func (r Rect) Hi() r3.Vector {
	return r3.Vector{X: r.X.Hi, Y: r.Y.Hi, Z: r.Z.Hi}
}

// ApproxEqual reports whether r and other are within epsilon of each other.
func (r Rect) ApproxEqual(other Rect) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return true
	}
	return pointsEqual(r.Lo(), other.Lo()) && pointsEqual(r.Hi(), other.Hi())
}

func (r Rect) String() string {
	return fmt.Sprintf("[Lo%v, Hi%v]", r.Lo(), r.Hi())
}

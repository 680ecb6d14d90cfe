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
	"github.com/golang/geo/r3"
)

const (
	// epsilon bounds the distance at which a point is considered to lie on
	// a plane, on a line, or on another point. The same tolerance is applied
	// uniformly in every shape state.
	epsilon = 1e-8

	// batchMin is the collection size above which classification and
	// reduction switch from the scalar loops to the SIMD batch kernels.
	batchMin = 16
)

// pointsEqual reports whether a and b coincide within epsilon.
func pointsEqual(a, b r3.Vector) bool {
	return a.Sub(b).Norm() < epsilon
}

// linearlyDependent reports whether the three points lie on a common line
// within epsilon. Coincident points are considered collinear.
func linearlyDependent(a, b, c r3.Vector) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	scale := ab.Norm() * ac.Norm()
	if scale < epsilon {
		return true
	}
	return ab.Cross(ac).Norm() < epsilon*scale
}

// containedWithinSegment reports whether p lies on the closed segment from a
// to b. The three points are assumed to be collinear.
func containedWithinSegment(p, a, b r3.Vector) bool {
	ab := b.Sub(a)
	len2 := ab.Norm2()
	if len2 < epsilon*epsilon {
		return pointsEqual(p, a)
	}
	t := p.Sub(a).Dot(ab) / len2
	return t >= -epsilon && t <= 1+epsilon
}

// polygonContainsPoint reports whether point lies inside or on the boundary
// of the convex polygon given by positions, which must wind counter-clockwise
// about normal. The point is assumed to be coplanar with the polygon.
func polygonContainsPoint(point r3.Vector, positions []r3.Vector, normal r3.Vector) bool {
	n := len(positions)
	for i := 0; i < n; i++ {
		a := positions[i]
		b := positions[(i+1)%n]
		if normal.Dot(b.Sub(a).Cross(point.Sub(a))) < -epsilon {
			return false
		}
	}
	return true
}

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

// PointStatus classifies a point against a plane.
type PointStatus int

const (
	// Above means the point lies strictly on the positive side of the
	// plane, i.e. the side its normal points to.
	Above PointStatus = iota
	// Below means the point lies strictly on the negative side of the plane.
	Below
	// OnPlane means the point lies within epsilon of the plane.
	OnPlane
)

// String returns the name of the status for debugging.
func (s PointStatus) String() string {
	switch s {
	case Above:
		return "Above"
	case Below:
		return "Below"
	case OnPlane:
		return "OnPlane"
	}
	return "Unknown"
}

// Plane is an oriented plane in R³, described by a unit normal and its
// signed distance from the origin. A point p lies on the plane iff
// Normal·p == Offset.
type Plane struct {
	Normal r3.Vector
	Offset float64
}

// PlaneFromPoints returns the plane through the three given points, oriented
// such that the points wind counter-clockwise when viewed from the positive
// side. It reports false if the points are collinear within epsilon.
func PlaneFromPoints(a, b, c r3.Vector) (Plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm < epsilon {
		return Plane{}, false
	}
	n = n.Mul(1 / norm)
	return Plane{Normal: n, Offset: n.Dot(a)}, true
}

// SignedDistance returns the signed distance of v from the plane, positive
// on the side the normal points to.
func (p Plane) SignedDistance(v r3.Vector) float64 {
	return p.Normal.Dot(v) - p.Offset
}

// StatusOf classifies v against the plane using the package epsilon.
func (p Plane) StatusOf(v r3.Vector) PointStatus {
	d := p.SignedDistance(v)
	switch {
	case d > epsilon:
		return Above
	case d < -epsilon:
		return Below
	}
	return OnPlane
}

// Flipped returns the same plane with its orientation reversed.
func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Mul(-1), Offset: -p.Offset}
}

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
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// convexHull2D computes the convex hull of a set of coplanar 3D points.
// The result is a subset of the input points, ordered counter-clockwise when
// viewed from the side of the plane that normal points to. Interior points
// and points on the interior of hull edges are dropped. The input is not
// modified.
func convexHull2D(points []r3.Vector, normal r3.Vector) []r3.Vector {
	if len(points) < 3 {
		return append([]r3.Vector(nil), points...)
	}

	u, w := planeBasis(normal)

	type projected struct {
		x, y float64
		pt   r3.Vector
	}
	ps := make([]projected, len(points))
	for i, p := range points {
		ps[i] = projected{x: u.Dot(p), y: w.Dot(p), pt: p}
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].x != ps[j].x {
			return ps[i].x < ps[j].x
		}
		return ps[i].y < ps[j].y
	})

	// Drop coincident points so they cannot produce zero-length hull edges.
	uniq := ps[:1]
	for _, p := range ps[1:] {
		last := uniq[len(uniq)-1]
		if math.Abs(p.x-last.x) > epsilon || math.Abs(p.y-last.y) > epsilon {
			uniq = append(uniq, p)
		}
	}
	ps = uniq
	if len(ps) < 3 {
		out := make([]r3.Vector, len(ps))
		for i, p := range ps {
			out[i] = p.pt
		}
		return out
	}

	// cross is the z component of (a-o) x (b-o) in the projected plane.
	cross := func(o, a, b projected) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	// Andrew's monotone chain. Non-left turns are popped, so collinear
	// points never survive on the hull boundary.
	var hull []projected
	for _, p := range ps {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(ps) - 2; i >= 0; i-- {
		p := ps[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= epsilon {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1]

	out := make([]r3.Vector, len(hull))
	for i, p := range hull {
		out[i] = p.pt
	}
	return out
}

// planeBasis returns two unit vectors u, w such that (u, w, normal) form a
// right-handed frame: counter-clockwise in (u, w) coordinates is
// counter-clockwise about normal.
func planeBasis(normal r3.Vector) (u, w r3.Vector) {
	ax := math.Abs(normal.X)
	ay := math.Abs(normal.Y)
	az := math.Abs(normal.Z)
	var axis r3.Vector
	switch {
	case ax <= ay && ax <= az:
		axis = r3.Vector{X: 1}
	case ay <= az:
		axis = r3.Vector{Y: 1}
	default:
		axis = r3.Vector{Z: 1}
	}
	u = normal.Cross(axis).Normalize()
	w = normal.Cross(u)
	return u, w
}

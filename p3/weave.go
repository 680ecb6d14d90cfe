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
	"go.uber.org/zap"
)

// shiftSeamForWeaving accepts a seam rotation if the first edge is not
// coplanar with the plane spanned by the apex and the last edge. Weaving
// from such a rotation cannot open a zero-area face across the seam start.
func shiftSeamForWeaving(position r3.Vector) func(*Seam) bool {
	return func(seam *Seam) bool {
		last := seam.Last()
		first := seam.First()

		v1 := last.FirstVertex()
		v2 := last.SecondVertex()
		v3 := first.FirstVertex()

		lastPlane, ok := PlaneFromPoints(position, v2.Position(), v1.Position())
		if !ok {
			return false
		}
		return lastPlane.StatusOf(v3.Position()) == Below
	}
}

// weave cones the given point over the seam: one new vertex at position and
// a fan of new faces connecting it to every seam edge, restoring a closed
// 2-manifold. Consecutive fan triangles that would be coplanar are merged
// into a single face. The point must lie strictly outside the mesh and the
// seam edges must be half-specified.
func (p *Polyhedron) weave(seam *Seam, position r3.Vector, cb Callback) {
	if seam.Len() < 3 {
		panic("p3: weave requires a seam of at least three edges")
	}
	if !seam.shiftUntil(shiftSeamForWeaving(position)) {
		panic("p3: no seam rotation admits weaving")
	}

	top := newVertex(position)

	var first, last *HalfEdge
	created := 0
	i := 0
	for i < seam.Len() {
		edge := seam.At(i)
		i++

		v1 := edge.SecondVertex()
		v2 := edge.FirstVertex()

		h1 := newHalfEdge(top)
		h2 := newHalfEdge(v1)
		h3 := newHalfEdge(v2)
		h := h3

		boundary := []*HalfEdge{h1, h2, h3}
		edge.setSecondEdge(h2)

		// Absorb subsequent seam edges while they stay coplanar with the
		// open face, extending the boundary instead of fanning out a new
		// degenerate triangle.
		if i < seam.Len() {
			plane, ok := PlaneFromPoints(top.Position(), v2.Position(), v1.Position())
			if ok {
				for i < seam.Len() {
					next := seam.At(i)
					if plane.StatusOf(next.FirstVertex().Position()) != OnPlane {
						break
					}
					next.setSecondEdge(h)
					h = newHalfEdge(next.FirstVertex())
					boundary = append(boundary, h)
					i++
				}
			}
		}

		face := newFace(boundary)
		notifyFaceWasCreated(cb, face)
		p.appendFace(face)
		created++

		if last != nil {
			p.appendEdge(newEdge(h1, last))
		}
		if first == nil {
			first = h1
		}
		last = h
	}

	p.appendEdge(newEdge(first, last))
	p.appendVertex(top)

	p.log().Debug("wove point onto seam",
		zap.Int("seamEdges", seam.Len()),
		zap.Int("newFaces", created),
	)
}

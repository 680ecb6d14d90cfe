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

// Face is a planar convex polygon of the mesh, represented as a circular
// loop of at least three half-edges which it owns. Read off in boundary
// order, its vertices wind counter-clockwise when viewed from outside the
// hull. Faces are owned by exactly one Polyhedron and linked into its
// circular face ring.
type Face struct {
	boundary      *HalfEdge
	boundaryCount int
	next          *Face
	prev          *Face
}

// newFace creates a face over the given half-edges, linking them into a
// circular boundary loop in the given order.
func newFace(boundary []*HalfEdge) *Face {
	f := &Face{boundary: boundary[0], boundaryCount: len(boundary)}
	n := len(boundary)
	for i, h := range boundary {
		h.face = f
		h.next = boundary[(i+1)%n]
		h.prev = boundary[(i+n-1)%n]
	}
	return f
}

// Boundary returns an arbitrary half-edge of the face's boundary loop.
func (f *Face) Boundary() *HalfEdge { return f.boundary }

// VertexCount returns the number of vertices (and half-edges) on the
// boundary.
func (f *Face) VertexCount() int { return f.boundaryCount }

// Next returns the successor of this face in the polyhedron's face ring.
func (f *Face) Next() *Face { return f.next }

// Prev returns the predecessor of this face in the polyhedron's face ring.
func (f *Face) Prev() *Face { return f.prev }

func (f *Face) forEachHalfEdge(fn func(*HalfEdge)) {
	h := f.boundary
	for {
		fn(h)
		h = h.next
		if h == f.boundary {
			break
		}
	}
}

// VertexPositions returns the positions of the face's vertices in boundary
// order.
func (f *Face) VertexPositions() []r3.Vector {
	positions := make([]r3.Vector, 0, f.boundaryCount)
	f.forEachHalfEdge(func(h *HalfEdge) {
		positions = append(positions, h.origin.position)
	})
	return positions
}

// Plane returns the supporting plane of the face, oriented so that the
// boundary winds counter-clockwise when viewed from the positive side. The
// normal is computed with Newell's method over all boundary vertices, which
// degrades gracefully for slightly non-planar boundaries.
func (f *Face) Plane() Plane {
	positions := f.VertexPositions()
	n := len(positions)

	var normal, centroid r3.Vector
	if n >= batchMin {
		ax, ay, az := make([]float64, n), make([]float64, n), make([]float64, n)
		bx, by, bz := make([]float64, n), make([]float64, n), make([]float64, n)
		cx, cy, cz := make([]float64, n), make([]float64, n), make([]float64, n)
		for i, p := range positions {
			q := positions[(i+1)%n]
			ax[i], ay[i], az[i] = p.X, p.Y, p.Z
			bx[i], by[i], bz[i] = q.X, q.Y, q.Z
		}
		BaseBatchCrossProduct(ax, ay, az, bx, by, bz, cx, cy, cz)
		nx, ny, nz := BaseSumPoints(cx, cy, cz)
		normal = r3.Vector{X: nx, Y: ny, Z: nz}
		sx, sy, sz := BaseSumPoints(ax, ay, az)
		centroid = r3.Vector{X: sx, Y: sy, Z: sz}.Mul(1 / float64(n))
	} else {
		for i, p := range positions {
			q := positions[(i+1)%n]
			normal = normal.Add(p.Cross(q))
			centroid = centroid.Add(p)
		}
		centroid = centroid.Mul(1 / float64(n))
	}

	normal = normal.Normalize()
	return Plane{Normal: normal, Offset: normal.Dot(centroid)}
}

// StatusOf classifies point against the face's supporting plane.
func (f *Face) StatusOf(point r3.Vector) PointStatus {
	return f.Plane().StatusOf(point)
}

// Flip reverses the winding of the face boundary. Every half-edge keeps its
// identity but takes its former destination as its new origin, and the
// boundary loop is traversed in the opposite direction.
func (f *Face) Flip() {
	hs := make([]*HalfEdge, 0, f.boundaryCount)
	f.forEachHalfEdge(func(h *HalfEdge) {
		hs = append(hs, h)
	})
	n := len(hs)
	origins := make([]*Vertex, n)
	for i, h := range hs {
		origins[i] = h.origin
	}
	for i, h := range hs {
		h.next, h.prev = h.prev, h.next
		h.origin = origins[(i+1)%n]
		h.origin.leaving = h
	}
}

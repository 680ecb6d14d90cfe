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

// Vertex is a corner of the polyhedron. It stores its position and one of
// the half-edges leaving it, which anchors all traversals around the vertex.
// Vertices are owned by exactly one Polyhedron and linked into its circular
// vertex ring.
type Vertex struct {
	position r3.Vector
	leaving  *HalfEdge
	next     *Vertex
	prev     *Vertex
}

func newVertex(position r3.Vector) *Vertex {
	return &Vertex{position: position}
}

// Position returns the vertex position.
func (v *Vertex) Position() r3.Vector { return v.position }

// Leaving returns a half-edge whose origin is this vertex, or nil for a
// vertex in a polyhedron without faces.
func (v *Vertex) Leaving() *HalfEdge { return v.leaving }

// Next returns the successor of this vertex in the polyhedron's vertex ring.
func (v *Vertex) Next() *Vertex { return v.next }

// Prev returns the predecessor of this vertex in the polyhedron's vertex ring.
func (v *Vertex) Prev() *Vertex { return v.prev }

// Incident reports whether this vertex lies on the boundary of f.
func (v *Vertex) Incident(f *Face) bool {
	if f == nil {
		return false
	}
	found := false
	f.forEachHalfEdge(func(h *HalfEdge) {
		if h.origin == v {
			found = true
		}
	})
	return found
}

func (v *Vertex) setPosition(position r3.Vector) {
	v.position = position
}

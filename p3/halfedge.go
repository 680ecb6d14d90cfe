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

// HalfEdge is one directed traversal of a mesh edge. It is owned by exactly
// one face, whose boundary it belongs to as part of a circular loop. Its
// edge pointer may be nil while the half-edge is under construction during
// surgery.
type HalfEdge struct {
	origin *Vertex
	edge   *Edge
	face   *Face
	next   *HalfEdge
	prev   *HalfEdge
}

// newHalfEdge creates a half-edge leaving origin and anchors the vertex to
// it if the vertex has no anchor yet.
func newHalfEdge(origin *Vertex) *HalfEdge {
	h := &HalfEdge{origin: origin}
	if origin.leaving == nil {
		origin.leaving = h
	}
	return h
}

// Origin returns the vertex this half-edge leaves.
func (h *HalfEdge) Origin() *Vertex { return h.origin }

// Destination returns the vertex this half-edge points to.
func (h *HalfEdge) Destination() *Vertex { return h.next.origin }

// Edge returns the mesh edge this half-edge belongs to, or nil while the
// half-edge is under construction.
func (h *HalfEdge) Edge() *Edge { return h.edge }

// Face returns the face whose boundary this half-edge belongs to.
func (h *HalfEdge) Face() *Face { return h.face }

// Next returns the next half-edge in the face boundary loop.
func (h *HalfEdge) Next() *HalfEdge { return h.next }

// Previous returns the previous half-edge in the face boundary loop.
func (h *HalfEdge) Previous() *HalfEdge { return h.prev }

// Twin returns the half-edge on the opposite side of this half-edge's mesh
// edge, or nil if the edge is half-specified.
func (h *HalfEdge) Twin() *HalfEdge {
	if h.edge == nil {
		return nil
	}
	return h.edge.Twin(h)
}

// setAsLeaving anchors the origin vertex to this half-edge.
func (h *HalfEdge) setAsLeaving() {
	h.origin.leaving = h
}

func (h *HalfEdge) unsetEdge() {
	h.edge = nil
}

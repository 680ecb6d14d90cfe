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

// Edge is an undirected mesh edge: an unordered pair of mutually opposite
// half-edges. Which half-edge is "first" and which is "second" is a pure
// labelling; Flip exchanges the labels without structural effect. During
// surgery an edge may be half-specified, with only the first half-edge set.
// Edges are owned by exactly one Polyhedron and linked into its circular
// edge ring.
type Edge struct {
	first  *HalfEdge
	second *HalfEdge
	next   *Edge
	prev   *Edge
}

// newEdge creates an edge over the given half-edges and wires their edge
// pointers. second may be nil, leaving the edge half-specified.
func newEdge(first, second *HalfEdge) *Edge {
	e := &Edge{first: first, second: second}
	first.edge = e
	if second != nil {
		second.edge = e
	}
	return e
}

// FirstEdge returns the half-edge currently labelled first.
func (e *Edge) FirstEdge() *HalfEdge { return e.first }

// SecondEdge returns the half-edge currently labelled second, or nil if the
// edge is half-specified.
func (e *Edge) SecondEdge() *HalfEdge { return e.second }

// FirstVertex returns the origin of the first half-edge.
func (e *Edge) FirstVertex() *Vertex { return e.first.origin }

// SecondVertex returns the origin of the second half-edge, which is the
// destination of the first.
func (e *Edge) SecondVertex() *Vertex {
	if e.second != nil {
		return e.second.origin
	}
	return e.first.Destination()
}

// FirstFace returns the face on the first half-edge's side.
func (e *Edge) FirstFace() *Face { return e.first.face }

// SecondFace returns the face on the second half-edge's side, or nil if the
// edge is half-specified.
func (e *Edge) SecondFace() *Face {
	if e.second == nil {
		return nil
	}
	return e.second.face
}

// FullySpecified reports whether both half-edges are set.
func (e *Edge) FullySpecified() bool { return e.second != nil }

// Twin returns the half-edge opposite to h on this edge.
func (e *Edge) Twin(h *HalfEdge) *HalfEdge {
	if h == e.first {
		return e.second
	}
	return e.first
}

// Next returns the successor of this edge in the polyhedron's edge ring.
func (e *Edge) Next() *Edge { return e.next }

// Prev returns the predecessor of this edge in the polyhedron's edge ring.
func (e *Edge) Prev() *Edge { return e.prev }

// Flip exchanges the first/second labels. This is a re-labelling only; the
// mesh structure is unchanged.
func (e *Edge) Flip() {
	e.first, e.second = e.second, e.first
}

// makeSecondEdge relabels the edge so that h is its second half-edge.
func (e *Edge) makeSecondEdge(h *HalfEdge) {
	if e.first == h {
		e.Flip()
	}
}

// setFirstAsLeaving anchors the first half-edge's origin to it, ensuring the
// vertex references a half-edge that survives a split.
func (e *Edge) setFirstAsLeaving() {
	e.first.setAsLeaving()
}

// setSecondEdge completes a half-specified edge with h.
func (e *Edge) setSecondEdge(h *HalfEdge) {
	e.second = h
	h.edge = e
}

// unsetSecondEdge detaches the second half-edge, leaving the edge
// half-specified.
func (e *Edge) unsetSecondEdge() {
	if e.second != nil {
		e.second.unsetEdge()
		e.second = nil
	}
}

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
	"go.uber.org/zap"
)

// createSeam walks the boundary between the matching and non-matching face
// regions of the criterion and returns it as a closed counter-clockwise
// loop of edges, each oriented so that its first face matches. The seam is
// empty if the criterion does not discriminate any edge, which callers must
// treat as "no surgery needed".
func (p *Polyhedron) createSeam(criterion splitCriterion) *Seam {
	seam := &Seam{}

	first := criterion.findFirstSplittingEdge(p)
	if first == nil {
		return seam
	}
	current := first
	for {
		seam.push(current)
		current = criterion.findNextSplittingEdge(current)
		if current == nil {
			// The boundary walk dead-ended, so the criterion does not
			// describe a closed region. Report "nothing to split".
			seam.clear()
			return seam
		}
		if current == first {
			break
		}
	}
	return seam
}

// split tears out every face, edge and vertex on the non-matching side of
// the seam, leaving the seam edges half-specified so that a cap can be
// attached. The seam must have at least three edges.
func (p *Polyhedron) split(seam *Seam, cb Callback) {
	if seam.Len() < 3 {
		panic("p3: split requires a seam of at least three edges")
	}

	// Detach the doomed side of every seam edge, anchoring each seam vertex
	// to its surviving half-edge first. The detached half-edge of the first
	// seam edge is the entry point into the doomed region.
	first := seam.First().SecondEdge()
	for _, edge := range seam.edges {
		edge.setFirstAsLeaving()
		edge.unsetSecondEdge()
	}

	p.deleteFaces(first, cb)

	p.log().Debug("split polyhedron along seam",
		zap.Int("seamEdges", seam.Len()),
		zap.Int("vertices", p.vertexCount),
		zap.Int("faces", p.faceCount),
	)
}

// deleteFaces removes the connected region of faces reachable from the
// given half-edge without crossing half-specified edges, together with the
// edges and vertices that become unreferenced. The walk is an explicit
// worklist rather than a recursion so that large regions cannot exhaust the
// stack.
func (p *Polyhedron) deleteFaces(first *HalfEdge, cb Callback) {
	// Collect the doomed region. The seam edges are already half-specified,
	// so flooding across fully-specified edges cannot escape the region.
	visited := map[*Face]bool{first.Face(): true}
	region := []*Face{first.Face()}
	stack := []*Face{first.Face()}
	for len(stack) > 0 {
		face := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		face.forEachHalfEdge(func(h *HalfEdge) {
			e := h.Edge()
			if e == nil || !e.FullySpecified() {
				return
			}
			neighbor := e.Twin(h).Face()
			if !visited[neighbor] {
				visited[neighbor] = true
				region = append(region, neighbor)
				stack = append(stack, neighbor)
			}
		})
	}

	// Unlink the region. Each interior edge is seen twice: the first visit
	// detaches the current side, the second deletes the edge. A vertex is
	// deleted when the walk reaches the half-edge it is anchored to; seam
	// vertices were re-anchored to surviving half-edges by split and are
	// never reached.
	for _, face := range region {
		notifyFaceWillBeDeleted(cb, face)
		face.forEachHalfEdge(func(h *HalfEdge) {
			if e := h.Edge(); e != nil {
				if e.FullySpecified() {
					e.makeSecondEdge(h)
					e.unsetSecondEdge()
				} else {
					h.unsetEdge()
					p.unlinkEdge(e)
				}
			}
			if origin := h.Origin(); origin.leaving == h {
				p.unlinkVertex(origin)
			}
		})
		p.unlinkFace(face)
	}
}

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

// shiftSeamForSealing accepts a seam rotation if capping can start at its
// first three vertices. The cap face winds opposite to the seam order, so
// its outward plane is the flipped plane through v1, v2, v3: the remaining
// seam vertices must stay on or above the constructed plane for the cap to
// become a supporting face of the re-capped hull.
func shiftSeamForSealing(seam *Seam) bool {
	first := seam.First()
	second := seam.Second()
	v1 := first.FirstVertex()
	v2 := first.SecondVertex()
	v3 := second.FirstVertex()

	plane, ok := PlaneFromPoints(v1.Position(), v2.Position(), v3.Position())
	if !ok {
		return false
	}

	last := seam.Last()
	if plane.StatusOf(last.SecondVertex().Position()) != Above {
		return false
	}

	if seam.Len() < 5 {
		return true
	}
	for i := 2; i < seam.Len()-1; i++ {
		if plane.StatusOf(seam.At(i).FirstVertex().Position()) == Below {
			return false
		}
	}
	return true
}

// sealWithSinglePolygon caps the seam with one new face whose boundary has
// one half-edge per seam edge. All seam vertices must be coplanar and all
// seam edges half-specified.
func (p *Polyhedron) sealWithSinglePolygon(seam *Seam, cb Callback) {
	if seam.Len() < 3 {
		panic("p3: sealing requires a seam of at least three edges")
	}

	boundary := make([]*HalfEdge, 0, seam.Len())
	for _, edge := range seam.edges {
		h := newHalfEdge(edge.SecondVertex())
		boundary = append(boundary, h)
		edge.setSecondEdge(h)
	}

	face := newFace(boundary)
	notifyFaceWasCreated(cb, face)
	p.appendFace(face)
}

// sealWithMultiplePolygons caps the seam with one or more new faces, one
// per maximal run of seam edges whose vertices are coplanar. Whenever a run
// ends early, a fresh boundary edge reconnects the remaining seam, which is
// then capped in turn.
func (p *Polyhedron) sealWithMultiplePolygons(seam *Seam, cb Callback) {
	if seam.Len() < 3 {
		panic("p3: sealing requires a seam of at least three edges")
	}
	if seam.Len() == 3 {
		p.sealWithSinglePolygon(seam, cb)
		return
	}

	created := 0
	for !seam.Empty() {
		// Rotate so the next cap starts from a triple whose plane supports
		// the remaining seam. The final coplanar remainder admits no such
		// rotation and is consumed whole below.
		seam.shiftUntil(shiftSeamForSealing)

		firstEdge := seam.At(0)
		secondEdge := seam.At(1)
		i := 2

		firstBoundary := newHalfEdge(firstEdge.SecondVertex())
		secondBoundary := newHalfEdge(secondEdge.SecondVertex())
		boundary := []*HalfEdge{firstBoundary, secondBoundary}
		firstEdge.setSecondEdge(firstBoundary)
		secondEdge.setSecondEdge(secondBoundary)

		// Consume further seam edges as long as their points stay coplanar
		// with the first three.
		v1 := firstEdge.FirstVertex()
		v2 := firstEdge.SecondVertex()
		v3 := secondEdge.FirstVertex()
		plane, ok := PlaneFromPoints(v1.Position(), v2.Position(), v3.Position())
		if !ok {
			panic("p3: degenerate seam triple while sealing")
		}

		lastVertex := v3
		for i < seam.Len() && plane.StatusOf(seam.At(i).FirstVertex().Position()) == OnPlane {
			curEdge := seam.At(i)
			i++

			h := newHalfEdge(curEdge.SecondVertex())
			boundary = append(boundary, h)
			curEdge.setSecondEdge(h)
			lastVertex = curEdge.FirstVertex()
		}

		if i < seam.Len() {
			// The run ended early: close this cap with a fresh edge and
			// splice that edge into the seam in place of the consumed run.
			h := newHalfEdge(lastVertex)
			boundary = append(boundary, h)

			newBoundaryEdge := newEdge(h, nil)
			p.appendEdge(newBoundaryEdge)
			seam.replace(i, newBoundaryEdge)
		} else {
			seam.clear()
		}

		face := newFace(boundary)
		notifyFaceWasCreated(cb, face)
		p.appendFace(face)
		created++
	}

	p.log().Debug("sealed seam",
		zap.Int("newFaces", created),
	)
}

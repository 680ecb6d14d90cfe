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

// A splitCriterion partitions the faces of a polyhedron into a matching
// region that survives surgery and a non-matching region that is torn out.
// Exactly two variants exist, so the criterion is a tagged value rather
// than an interface.
type criterionKind int

const (
	// splitByConnectivity matches faces not incident to a target vertex.
	// Used by vertex removal: everything touching the vertex goes.
	splitByConnectivity criterionKind = iota
	// splitByVisibility matches faces whose plane the point lies strictly
	// below, i.e. faces the point cannot see. Used by hull growth: every
	// face visible from the new point goes.
	splitByVisibility
)

type splitCriterion struct {
	kind   criterionKind
	vertex *Vertex
	point  r3.Vector
}

func connectivityCriterion(v *Vertex) splitCriterion {
	return splitCriterion{kind: splitByConnectivity, vertex: v}
}

func visibilityCriterion(point r3.Vector) splitCriterion {
	return splitCriterion{kind: splitByVisibility, point: point}
}

func (c splitCriterion) matchesFace(f *Face) bool {
	if f == nil {
		return false
	}
	switch c.kind {
	case splitByConnectivity:
		return !c.vertex.Incident(f)
	default:
		return f.StatusOf(c.point) == Below
	}
}

type matchResult int

const (
	matchNeither matchResult = iota
	matchFirst
	matchSecond
	matchBoth
)

func (c splitCriterion) matchEdge(e *Edge) matchResult {
	first := c.matchesFace(e.FirstFace())
	second := c.matchesFace(e.SecondFace())
	switch {
	case first && second:
		return matchBoth
	case first:
		return matchFirst
	case second:
		return matchSecond
	}
	return matchNeither
}

// findFirstSplittingEdge scans the edge ring for an edge whose two faces
// disagree on the criterion, relabelled so that its first face matches.
// It returns nil if the criterion does not discriminate any edge.
func (c splitCriterion) findFirstSplittingEdge(p *Polyhedron) *Edge {
	var found *Edge
	p.forEachEdge(func(e *Edge) {
		if found != nil {
			return
		}
		switch c.matchEdge(e) {
		case matchSecond:
			e.Flip()
			fallthrough
		case matchFirst:
			found = e
		}
	})
	return found
}

// findNextSplittingEdge returns the next seam edge in counter-clockwise
// order after last, relabelled so that its first face matches, or nil if
// the boundary walk returns to last without finding one.
func (c splitCriterion) findNextSplittingEdge(last *Edge) *Edge {
	halfEdge := last.FirstEdge().Previous()
	next := halfEdge.Edge()

	result := c.matchEdge(next)
	for result != matchFirst && result != matchSecond && next != last {
		halfEdge = halfEdge.Twin().Previous()
		next = halfEdge.Edge()
		result = c.matchEdge(next)
	}

	if result != matchFirst && result != matchSecond {
		return nil
	}
	if result == matchSecond {
		next.Flip()
	}
	return next
}

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

// AddPoint incorporates the given point into the hull and reports whether
// the hull changed. Points that are duplicates of existing vertices or that
// already lie inside the hull are ignored.
func (p *Polyhedron) AddPoint(position r3.Vector) bool {
	return p.AddPointWith(position, nil)
}

// AddPointWith is AddPoint with a surgery callback.
func (p *Polyhedron) AddPointWith(position r3.Vector, cb Callback) bool {
	// Rebuilding branches clear the polyhedron along the way, so the
	// bounding box is restored from a snapshot: it grows by exactly the new
	// point when it is incorporated and is untouched otherwise.
	bounds := p.bounds

	var added bool
	switch p.vertexCount {
	case 0:
		p.addFirstPoint(position)
		added = true
	case 1:
		added = p.addSecondPoint(position)
	case 2:
		added = p.addThirdPoint(position, cb)
	default:
		added = p.addFurtherPoint(position, cb)
	}

	if added {
		p.bounds = bounds.AddPoint(position)
		p.log().Debug("added point",
			zap.Int("vertices", p.vertexCount),
			zap.Int("edges", p.edgeCount),
			zap.Int("faces", p.faceCount),
		)
	} else {
		p.bounds = bounds
	}
	return added
}

// AddPoints incorporates every given point in order.
func (p *Polyhedron) AddPoints(positions []r3.Vector) {
	p.AddPointsWith(positions, nil)
}

// AddPointsWith is AddPoints with a surgery callback.
func (p *Polyhedron) AddPointsWith(positions []r3.Vector, cb Callback) {
	for _, position := range positions {
		p.AddPointWith(position, cb)
	}
}

// addFirstPoint stores the point as the sole vertex of an empty polyhedron.
func (p *Polyhedron) addFirstPoint(position r3.Vector) {
	p.appendVertex(newVertex(position))
}

// addSecondPoint joins a new point to the only vertex with a single edge,
// unless the point coincides with it.
func (p *Polyhedron) addSecondPoint(position r3.Vector) bool {
	only := p.vertices
	if pointsEqual(position, only.position) {
		return false
	}

	v := newVertex(position)
	p.appendVertex(v)

	h1 := newHalfEdge(only)
	h2 := newHalfEdge(v)
	p.appendEdge(newEdge(h1, h2))
	return true
}

// addThirdPoint grows an edge into a polygon, or extends the edge if the
// point is collinear with it.
func (p *Polyhedron) addThirdPoint(position r3.Vector, cb Callback) bool {
	v1 := p.vertices
	v2 := v1.next
	if linearlyDependent(v1.position, v2.position, position) {
		return p.addPointToEdge(position)
	}
	return p.addPointToPolygon(position, cb)
}

// addPointToEdge handles a point collinear with the current edge: it is
// dropped if the segment already contains it, otherwise the endpoint that
// would become interior is replaced.
func (p *Polyhedron) addPointToEdge(position r3.Vector) bool {
	v1 := p.vertices
	v2 := v1.next

	if containedWithinSegment(position, v1.position, v2.position) {
		return false
	}
	if containedWithinSegment(v2.position, v1.position, position) {
		v2.setPosition(position)
	} else {
		v1.setPosition(position)
	}
	return true
}

// addFurtherPoint adds a point to a polyhedron that is at least a polygon.
func (p *Polyhedron) addFurtherPoint(position r3.Vector, cb Callback) bool {
	if p.faceCount == 1 {
		return p.addFurtherPointToPolygon(position, cb)
	}
	return p.addFurtherPointToPolyhedron(position, cb)
}

// addFurtherPointToPolygon either grows the polygon within its plane or
// promotes it to a full polyhedron when the point leaves the plane. The
// polygon is flipped first if the point is on its positive side, keeping
// the woven cone consistently wound.
func (p *Polyhedron) addFurtherPointToPolygon(position r3.Vector, cb Callback) bool {
	face := p.faces
	switch face.StatusOf(position) {
	case OnPlane:
		return p.addPointToPolygon(position, cb)
	case Above:
		face.Flip()
	}
	return p.makePolyhedron(position, cb)
}

// addPointToPolygon handles a coplanar point: a no-op if the polygon
// already contains it, otherwise the polygon is rebuilt from the 2D convex
// hull of the old vertices plus the point.
func (p *Polyhedron) addPointToPolygon(position r3.Vector, cb Callback) bool {
	var positions []r3.Vector
	var normal r3.Vector

	if p.faceCount == 1 {
		face := p.faces
		normal = face.Plane().Normal
		positions = face.VertexPositions()
		if polygonContainsPoint(position, positions, normal) {
			return false
		}
	} else {
		// Two non-collinear points plus the new one span the first polygon.
		v1 := p.vertices
		v2 := v1.next
		positions = []r3.Vector{v1.position, v2.position}
		plane, ok := PlaneFromPoints(v1.position, v2.position, position)
		if !ok {
			return false
		}
		normal = plane.Normal
	}

	hull := convexHull2D(append(positions, position), normal)
	p.clearWith(cb)
	p.makePolygon(hull, cb)
	return true
}

// makePolygon builds a polygon over an empty polyhedron from at least three
// coplanar points in counter-clockwise order.
func (p *Polyhedron) makePolygon(positions []r3.Vector, cb Callback) {
	if !p.Empty() {
		panic("p3: makePolygon requires an empty polyhedron")
	}
	if len(positions) < 3 {
		panic("p3: makePolygon requires at least three points")
	}

	boundary := make([]*HalfEdge, 0, len(positions))
	for _, position := range positions {
		v := newVertex(position)
		h := newHalfEdge(v)
		p.appendVertex(v)
		boundary = append(boundary, h)
		p.appendEdge(newEdge(h, nil))
	}

	f := newFace(boundary)
	notifyFaceWasCreated(cb, f)
	p.appendFace(f)
}

// MakePolygon initializes an empty polyhedron as a polygon over the given
// coplanar points, which must be convex and in counter-clockwise order.
// It panics if the polyhedron is not empty or fewer than three points are
// given.
func (p *Polyhedron) MakePolygon(positions []r3.Vector) {
	p.makePolygon(positions, nil)
	p.updateBounds()
}

// makePolyhedron promotes a polygon to a polyhedron by seaming its entire
// boundary and weaving the given non-coplanar point onto it.
func (p *Polyhedron) makePolyhedron(position r3.Vector, cb Callback) bool {
	seam := &Seam{}
	first := p.faces.boundary
	current := first
	for {
		seam.push(current.edge)
		// The seam must wind counter-clockwise around the region the new
		// point sees, so the boundary is walked backwards.
		current = current.prev
		if current == first {
			break
		}
	}

	p.weave(seam, position, cb)
	return true
}

// addFurtherPointToPolyhedron grows a full polyhedron: faces visible from
// the point are split away and the point is woven onto the resulting seam.
func (p *Polyhedron) addFurtherPointToPolyhedron(position r3.Vector, cb Callback) bool {
	if p.Contains(position) {
		return false
	}
	seam := p.createSeam(visibilityCriterion(position))
	if seam.Empty() {
		// Containment said outside but no face discriminates the point;
		// treat as no change rather than corrupt the mesh.
		return false
	}
	p.split(seam, cb)
	p.weave(seam, position, cb)
	return true
}

// RemoveVertex removes the given vertex from the polyhedron, keeping the
// hull convex. The vertex must belong to this polyhedron; violating that is
// a programmer error and panics.
func (p *Polyhedron) RemoveVertex(v *Vertex) {
	p.RemoveVertexWith(v, nil)
}

// RemoveVertexWith is RemoveVertex with a surgery callback.
func (p *Polyhedron) RemoveVertexWith(v *Vertex, cb Callback) {
	if v == nil {
		panic("p3: RemoveVertex on nil vertex")
	}
	if p.FindVertexByPosition(v.position) != v {
		panic("p3: vertex does not belong to this polyhedron")
	}

	switch {
	case p.IsPoint():
		p.clearWith(cb)
	case p.IsEdge():
		p.removeVertexFromEdge(v)
	case p.IsPolygon():
		p.removeVertexFromPolygon(v, cb)
	default:
		p.removeVertexFromPolyhedron(v, cb)
	}

	p.log().Debug("removed vertex",
		zap.Int("vertices", p.vertexCount),
		zap.Int("edges", p.edgeCount),
		zap.Int("faces", p.faceCount),
	)
}

// removeVertexFromEdge degrades an edge polyhedron to a point.
func (p *Polyhedron) removeVertexFromEdge(v *Vertex) {
	other := v.next
	p.unlinkEdge(p.edges)
	p.unlinkVertex(v)
	other.leaving = nil
	p.bounds = RectFromPoint(other.position)
}

// removeVertexFromPolygon rebuilds the polygon without the vertex,
// degrading to an edge or point when fewer than three vertices remain.
func (p *Polyhedron) removeVertexFromPolygon(v *Vertex, cb Callback) {
	face := p.faces
	remaining := make([]r3.Vector, 0, face.boundaryCount-1)
	face.forEachHalfEdge(func(h *HalfEdge) {
		if h.origin != v {
			remaining = append(remaining, h.origin.position)
		}
	})

	p.clearWith(cb)
	if len(remaining) >= 3 {
		p.makePolygon(remaining, cb)
		p.updateBounds()
		return
	}
	for _, position := range remaining {
		p.AddPointWith(position, cb)
	}
}

// removeVertexFromPolyhedron splits away the faces touching the vertex and
// seals the hole. If the surviving points are all coplanar the result
// degrades to a polygon.
func (p *Polyhedron) removeVertexFromPolyhedron(v *Vertex, cb Callback) {
	seam := p.createSeam(connectivityCriterion(v))
	if seam.Empty() {
		panic("p3: empty removal seam")
	}
	p.split(seam, cb)
	p.sealWithMultiplePolygons(seam, cb)

	// When the remaining points are coplanar, the cap mirrors the one
	// surviving face. Collapse the pair into a polygon.
	if p.faceCount == 2 {
		positions := p.faces.VertexPositions()
		p.clearWith(cb)
		p.makePolygon(positions, cb)
	}
	p.updateBounds()
}

// Merge incorporates every vertex of the other polyhedron into this one.
// Coincident and interior points are ignored along the way.
func (p *Polyhedron) Merge(other *Polyhedron) {
	p.MergeWith(other, nil)
}

// MergeWith is Merge with a surgery callback.
func (p *Polyhedron) MergeWith(other *Polyhedron, cb Callback) {
	if other == nil || other.Empty() {
		return
	}
	first := other.vertices
	current := first
	for {
		p.AddPointWith(current.position, cb)
		current = current.next
		if current == first {
			break
		}
	}
}

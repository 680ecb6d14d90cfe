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

// Callback observes face lifecycle events during hull surgery. Both hooks
// are invoked synchronously, in the order the events occur: FaceWasCreated
// exactly once per new face, after its boundary is fully wired, and
// FaceWillBeDeleted exactly once per face, before its boundary half-edges
// are unlinked. A callback must not call back into the polyhedron.
type Callback interface {
	FaceWasCreated(*Face)
	FaceWillBeDeleted(*Face)
}

func notifyFaceWasCreated(cb Callback, f *Face) {
	if cb != nil {
		cb.FaceWasCreated(f)
	}
}

func notifyFaceWillBeDeleted(cb Callback, f *Face) {
	if cb != nil {
		cb.FaceWillBeDeleted(f)
	}
}

var nopLogger = zap.NewNop()

// Polyhedron is the convex hull of the points added to it so far. It owns
// its vertices, edges and faces and keeps a running axis-aligned bounding
// box of the incorporated points.
//
// The zero value is an empty polyhedron ready for use, but New is the
// conventional constructor.
type Polyhedron struct {
	vertices    *Vertex
	vertexCount int
	edges       *Edge
	edgeCount   int
	faces       *Face
	faceCount   int

	bounds Rect
	logger *zap.Logger
}

// New returns an empty polyhedron.
func New() *Polyhedron {
	return &Polyhedron{bounds: EmptyRect()}
}

// SetLogger installs a structured logger for surgery tracing. Passing nil
// restores the default no-op logger.
func (p *Polyhedron) SetLogger(l *zap.Logger) {
	p.logger = l
}

func (p *Polyhedron) log() *zap.Logger {
	if p.logger == nil {
		return nopLogger
	}
	return p.logger
}

// Empty reports whether the polyhedron has no vertices.
func (p *Polyhedron) Empty() bool { return p.vertexCount == 0 }

// IsPoint reports whether the polyhedron consists of a single vertex.
func (p *Polyhedron) IsPoint() bool { return p.vertexCount == 1 }

// IsEdge reports whether the polyhedron consists of two vertices joined by
// a single edge.
func (p *Polyhedron) IsEdge() bool { return p.vertexCount == 2 }

// IsPolygon reports whether the polyhedron is a planar polygon: at least
// three vertices sharing a single face.
func (p *Polyhedron) IsPolygon() bool { return p.vertexCount >= 3 && p.faceCount == 1 }

// IsPolyhedron reports whether the polyhedron is a closed 2-manifold with
// at least four faces.
func (p *Polyhedron) IsPolyhedron() bool { return p.vertexCount >= 4 && p.faceCount >= 4 }

// VertexCount returns the number of vertices.
func (p *Polyhedron) VertexCount() int { return p.vertexCount }

// EdgeCount returns the number of edges.
func (p *Polyhedron) EdgeCount() int { return p.edgeCount }

// FaceCount returns the number of faces.
func (p *Polyhedron) FaceCount() int { return p.faceCount }

// Bounds returns the axis-aligned bounding box of the incorporated points.
func (p *Polyhedron) Bounds() Rect { return p.bounds }

// FrontVertex returns the head of the vertex ring, or nil if empty. The
// full ring is reachable through Vertex.Next.
func (p *Polyhedron) FrontVertex() *Vertex { return p.vertices }

// FrontEdge returns the head of the edge ring, or nil if there are no edges.
func (p *Polyhedron) FrontEdge() *Edge { return p.edges }

// FrontFace returns the head of the face ring, or nil if there are no faces.
func (p *Polyhedron) FrontFace() *Face { return p.faces }

// VertexPositions returns the positions of all vertices in ring order.
func (p *Polyhedron) VertexPositions() []r3.Vector {
	positions := make([]r3.Vector, 0, p.vertexCount)
	p.forEachVertex(func(v *Vertex) {
		positions = append(positions, v.position)
	})
	return positions
}

// Faces returns all faces in ring order.
func (p *Polyhedron) Faces() []*Face {
	faces := make([]*Face, 0, p.faceCount)
	p.forEachFace(func(f *Face) {
		faces = append(faces, f)
	})
	return faces
}

// Edges returns all edges in ring order.
func (p *Polyhedron) Edges() []*Edge {
	edges := make([]*Edge, 0, p.edgeCount)
	p.forEachEdge(func(e *Edge) {
		edges = append(edges, e)
	})
	return edges
}

func (p *Polyhedron) forEachVertex(fn func(*Vertex)) {
	if p.vertices == nil {
		return
	}
	v := p.vertices
	for {
		fn(v)
		v = v.next
		if v == p.vertices {
			break
		}
	}
}

func (p *Polyhedron) forEachEdge(fn func(*Edge)) {
	if p.edges == nil {
		return
	}
	e := p.edges
	for {
		fn(e)
		e = e.next
		if e == p.edges {
			break
		}
	}
}

func (p *Polyhedron) forEachFace(fn func(*Face)) {
	if p.faces == nil {
		return
	}
	f := p.faces
	for {
		fn(f)
		f = f.next
		if f == p.faces {
			break
		}
	}
}

// FindVertexByPosition returns the vertex at the given position within
// epsilon, or nil.
func (p *Polyhedron) FindVertexByPosition(position r3.Vector) *Vertex {
	var found *Vertex
	p.forEachVertex(func(v *Vertex) {
		if found == nil && pointsEqual(v.position, position) {
			found = v
		}
	})
	return found
}

// Contains reports whether the given point lies on or inside the current
// hull, in any shape state.
func (p *Polyhedron) Contains(point r3.Vector) bool {
	switch {
	case p.Empty():
		return false
	case p.IsPoint():
		return pointsEqual(point, p.vertices.position)
	case p.IsEdge():
		a := p.vertices.position
		b := p.vertices.next.position
		return linearlyDependent(a, b, point) && containedWithinSegment(point, a, b)
	case p.IsPolygon():
		face := p.faces
		if face.StatusOf(point) != OnPlane {
			return false
		}
		return polygonContainsPoint(point, face.VertexPositions(), face.Plane().Normal)
	}
	if p.faceCount >= batchMin {
		return p.containsBatch(point)
	}
	contained := true
	p.forEachFace(func(f *Face) {
		if contained && f.StatusOf(point) == Above {
			contained = false
		}
	})
	return contained
}

// containsBatch classifies the point against all face planes at once using
// the SIMD kernel over an SoA gather of the planes.
func (p *Polyhedron) containsBatch(point r3.Vector) bool {
	n := p.faceCount
	nx := make([]float64, 0, n)
	ny := make([]float64, 0, n)
	nz := make([]float64, 0, n)
	off := make([]float64, 0, n)
	p.forEachFace(func(f *Face) {
		plane := f.Plane()
		nx = append(nx, plane.Normal.X)
		ny = append(ny, plane.Normal.Y)
		nz = append(nz, plane.Normal.Z)
		off = append(off, plane.Offset)
	})
	dst := make([]float64, n)
	BaseSignedDistanceBatch(point.X, point.Y, point.Z, nx, ny, nz, off, dst)
	for _, d := range dst {
		if d > epsilon {
			return false
		}
	}
	return true
}

// Clear removes all vertices, edges and faces and resets the bounding box.
func (p *Polyhedron) Clear() {
	p.clearWith(nil)
}

// updateBounds recomputes the bounding box from scratch over all vertices.
func (p *Polyhedron) updateBounds() {
	if p.vertexCount == 0 {
		p.bounds = EmptyRect()
		return
	}
	if p.vertexCount >= batchMin {
		xs := make([]float64, 0, p.vertexCount)
		ys := make([]float64, 0, p.vertexCount)
		zs := make([]float64, 0, p.vertexCount)
		p.forEachVertex(func(v *Vertex) {
			xs = append(xs, v.position.X)
			ys = append(ys, v.position.Y)
			zs = append(zs, v.position.Z)
		})
		xLo, xHi := BaseBatchMinMax(xs)
		yLo, yHi := BaseBatchMinMax(ys)
		zLo, zHi := BaseBatchMinMax(zs)
		p.bounds = rectFromExtents(xLo, xHi, yLo, yHi, zLo, zHi)
		return
	}
	bounds := RectFromPoint(p.vertices.position)
	p.forEachVertex(func(v *Vertex) {
		bounds = bounds.AddPoint(v.position)
	})
	p.bounds = bounds
}

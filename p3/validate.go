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
	"github.com/pkg/errors"
)

// Validate checks the structural invariants of the polyhedron and returns
// the first violation found, or nil if the polyhedron is well formed. It is
// intended for tests and debugging; surgery assumes validity rather than
// checking it.
func (p *Polyhedron) Validate() error {
	if err := p.validateCounts(); err != nil {
		return err
	}
	if err := p.validateRings(); err != nil {
		return err
	}
	if p.Empty() || p.IsPoint() || p.IsEdge() {
		return nil
	}
	if err := p.validateEdges(); err != nil {
		return err
	}
	if err := p.validateFaces(); err != nil {
		return err
	}
	if err := p.validateVertices(); err != nil {
		return err
	}
	return p.validateConvexity()
}

func (p *Polyhedron) validateCounts() error {
	switch {
	case p.vertexCount == 0:
		if p.edgeCount != 0 || p.faceCount != 0 {
			return errors.Errorf("empty polyhedron has %d edges and %d faces", p.edgeCount, p.faceCount)
		}
	case p.vertexCount == 1:
		if p.edgeCount != 0 || p.faceCount != 0 {
			return errors.Errorf("point has %d edges and %d faces", p.edgeCount, p.faceCount)
		}
	case p.vertexCount == 2:
		if p.edgeCount != 1 || p.faceCount != 0 {
			return errors.Errorf("edge has %d edges and %d faces", p.edgeCount, p.faceCount)
		}
	case p.faceCount == 1:
		if p.edgeCount != p.vertexCount {
			return errors.Errorf("polygon has %d vertices but %d edges", p.vertexCount, p.edgeCount)
		}
	default:
		if p.faceCount < 4 {
			return errors.Errorf("polyhedron has only %d faces", p.faceCount)
		}
		// Euler's formula for a closed genus zero surface.
		if p.vertexCount-p.edgeCount+p.faceCount != 2 {
			return errors.Errorf("V - E + F = %d, want 2", p.vertexCount-p.edgeCount+p.faceCount)
		}
	}
	return nil
}

func (p *Polyhedron) validateRings() error {
	vertices := 0
	if p.vertices != nil {
		current := p.vertices
		for {
			if current.next.prev != current {
				return errors.New("vertex ring links are asymmetric")
			}
			vertices++
			current = current.next
			if current == p.vertices {
				break
			}
		}
	}
	if vertices != p.vertexCount {
		return errors.Errorf("vertex ring has %d entries, count says %d", vertices, p.vertexCount)
	}

	edges := 0
	if p.edges != nil {
		current := p.edges
		for {
			if current.next.prev != current {
				return errors.New("edge ring links are asymmetric")
			}
			edges++
			current = current.next
			if current == p.edges {
				break
			}
		}
	}
	if edges != p.edgeCount {
		return errors.Errorf("edge ring has %d entries, count says %d", edges, p.edgeCount)
	}

	faces := 0
	if p.faces != nil {
		current := p.faces
		for {
			if current.next.prev != current {
				return errors.New("face ring links are asymmetric")
			}
			faces++
			current = current.next
			if current == p.faces {
				break
			}
		}
	}
	if faces != p.faceCount {
		return errors.Errorf("face ring has %d entries, count says %d", faces, p.faceCount)
	}
	return nil
}

func (p *Polyhedron) validateEdges() error {
	polygon := p.IsPolygon()
	var err error
	p.forEachEdge(func(e *Edge) {
		if err != nil {
			return
		}
		if e.first == nil {
			err = errors.New("edge without a first half edge")
			return
		}
		if e.first.edge != e {
			err = errors.New("first half edge does not point back to its edge")
			return
		}
		switch {
		case polygon:
			if e.second != nil {
				err = errors.New("polygon edge has a second half edge")
			}
		case e.second == nil:
			err = errors.New("polyhedron edge is half specified")
		case e.second.edge != e:
			err = errors.New("second half edge does not point back to its edge")
		case e.first.next.origin != e.second.origin || e.second.next.origin != e.first.origin:
			err = errors.Errorf("half edges of edge %v-%v do not mirror each other",
				e.FirstVertex().position, e.SecondVertex().position)
		case e.first.face == e.second.face:
			err = errors.New("both half edges of an edge share a face")
		}
	})
	return err
}

func (p *Polyhedron) validateFaces() error {
	var err error
	p.forEachFace(func(f *Face) {
		if err != nil {
			return
		}
		count := 0
		plane := f.Plane()
		current := f.boundary
		for {
			if current.face != f {
				err = errors.New("boundary half edge does not point back to its face")
				return
			}
			if current.next.prev != current {
				err = errors.New("boundary links are asymmetric")
				return
			}
			if plane.StatusOf(current.origin.position) != OnPlane {
				err = errors.Errorf("vertex %v is off the plane of its face", current.origin.position)
				return
			}
			count++
			current = current.next
			if current == f.boundary {
				break
			}
		}
		if count < 3 {
			err = errors.Errorf("face boundary has %d half edges", count)
			return
		}
		if count != f.boundaryCount {
			err = errors.Errorf("face boundary has %d half edges, count says %d", count, f.boundaryCount)
		}
	})
	return err
}

func (p *Polyhedron) validateVertices() error {
	var err error
	p.forEachVertex(func(v *Vertex) {
		if err != nil {
			return
		}
		switch {
		case v.leaving == nil:
			err = errors.Errorf("vertex %v has no leaving half edge", v.position)
		case v.leaving.origin != v:
			err = errors.Errorf("leaving half edge of vertex %v originates elsewhere", v.position)
		}
	})
	return err
}

func (p *Polyhedron) validateConvexity() error {
	var err error
	p.forEachFace(func(f *Face) {
		if err != nil {
			return
		}
		plane := f.Plane()
		p.forEachVertex(func(v *Vertex) {
			if err != nil {
				return
			}
			if plane.StatusOf(v.position) == Above {
				err = errors.Errorf("vertex %v lies outside the plane of a face", v.position)
			}
		})
	})
	return err
}

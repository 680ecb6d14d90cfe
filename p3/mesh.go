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

// Structural mutators for the polyhedron's owning collections. Vertices,
// edges and faces live on circular doubly-linked rings headed by the
// polyhedron; all allocation and release of mesh entities funnels through
// these functions.

func (p *Polyhedron) appendVertex(v *Vertex) {
	if p.vertices == nil {
		v.next, v.prev = v, v
		p.vertices = v
	} else {
		head := p.vertices
		v.prev = head.prev
		v.next = head
		head.prev.next = v
		head.prev = v
	}
	p.vertexCount++
}

func (p *Polyhedron) unlinkVertex(v *Vertex) {
	if v.next == v {
		p.vertices = nil
	} else {
		v.prev.next = v.next
		v.next.prev = v.prev
		if p.vertices == v {
			p.vertices = v.next
		}
	}
	v.next, v.prev = nil, nil
	v.leaving = nil
	p.vertexCount--
}

func (p *Polyhedron) appendEdge(e *Edge) {
	if p.edges == nil {
		e.next, e.prev = e, e
		p.edges = e
	} else {
		head := p.edges
		e.prev = head.prev
		e.next = head
		head.prev.next = e
		head.prev = e
	}
	p.edgeCount++
}

func (p *Polyhedron) unlinkEdge(e *Edge) {
	if e.next == e {
		p.edges = nil
	} else {
		e.prev.next = e.next
		e.next.prev = e.prev
		if p.edges == e {
			p.edges = e.next
		}
	}
	e.next, e.prev = nil, nil
	p.edgeCount--
}

func (p *Polyhedron) appendFace(f *Face) {
	if p.faces == nil {
		f.next, f.prev = f, f
		p.faces = f
	} else {
		head := p.faces
		f.prev = head.prev
		f.next = head
		head.prev.next = f
		head.prev = f
	}
	p.faceCount++
}

func (p *Polyhedron) unlinkFace(f *Face) {
	if f.next == f {
		p.faces = nil
	} else {
		f.prev.next = f.next
		f.next.prev = f.prev
		if p.faces == f {
			p.faces = f.next
		}
	}
	f.next, f.prev = nil, nil
	p.faceCount--
}

// clearWith drops every entity of the polyhedron, firing FaceWillBeDeleted
// for each face before its boundary is abandoned.
func (p *Polyhedron) clearWith(cb Callback) {
	if p.faces != nil {
		f := p.faces
		for {
			notifyFaceWillBeDeleted(cb, f)
			f = f.next
			if f == p.faces {
				break
			}
		}
	}
	p.vertices, p.vertexCount = nil, 0
	p.edges, p.edgeCount = nil, 0
	p.faces, p.faceCount = nil, 0
	p.bounds = EmptyRect()
}

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

// Seam is an ordered cyclic sequence of edges bounding a region of the mesh
// that is about to be replaced. While valid, each edge's first face
// satisfies the originating splitting criterion, its second face does not
// (or is absent), and consecutive edges share a vertex:
//
//	seam.At(i).FirstVertex() == seam.At(i+1).SecondVertex()
//
// cyclically, forming a closed counter-clockwise loop when viewed from
// outside the region. A Seam does not own its edges and never outlives the
// surgery it describes.
type Seam struct {
	edges []*Edge
}

// Len returns the number of edges in the seam.
func (s *Seam) Len() int { return len(s.edges) }

// Empty reports whether the seam has no edges.
func (s *Seam) Empty() bool { return len(s.edges) == 0 }

// At returns the i-th edge of the seam.
func (s *Seam) At(i int) *Edge { return s.edges[i] }

// First returns the first edge of the seam.
func (s *Seam) First() *Edge { return s.edges[0] }

// Second returns the second edge of the seam.
func (s *Seam) Second() *Edge { return s.edges[1] }

// Last returns the last edge of the seam.
func (s *Seam) Last() *Edge { return s.edges[len(s.edges)-1] }

func (s *Seam) push(e *Edge) {
	s.edges = append(s.edges, e)
}

func (s *Seam) clear() {
	s.edges = s.edges[:0]
}

// shift rotates the seam by one position, making the second edge first.
func (s *Seam) shift() {
	s.edges = append(s.edges[1:], s.edges[0])
}

// shiftUntil rotates the seam until pred holds, trying every rotation at
// most once. It reports whether a satisfying rotation was found; on failure
// the seam is back in its original rotation.
func (s *Seam) shiftUntil(pred func(*Seam) bool) bool {
	for i := 0; i < len(s.edges); i++ {
		if pred(s) {
			return true
		}
		s.shift()
	}
	return false
}

// replace drops the first consumed edges and appends replacement, which
// must reconnect the remainder of the seam into a closed loop.
func (s *Seam) replace(consumed int, replacement *Edge) {
	s.edges = append(s.edges[consumed:], replacement)
}

// wellFormed reports whether consecutive seam edges share a vertex, treating
// the sequence as cyclic.
func (s *Seam) wellFormed() bool {
	if len(s.edges) < 3 {
		return false
	}
	last := s.Last()
	for _, e := range s.edges {
		if last.FirstVertex() != e.SecondVertex() {
			return false
		}
		last = e
	}
	return true
}

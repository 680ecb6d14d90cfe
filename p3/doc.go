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

/*
Package p3 implements an incremental three-dimensional convex hull over a
half-edge polyhedron mesh.

A Polyhedron consumes a stream of points and maintains, at all times, a
topologically valid mesh of vertices, directed half-edges, undirected edges
and planar faces that is the convex hull of the points inserted so far.
Points may arrive in any order, including degenerate configurations
(coincident, collinear or coplanar points), and individual vertices can be
removed again while keeping the hull convex.

Depending on the points it has seen, a Polyhedron is in exactly one of five
shape states: empty, a single point, a single edge, a planar polygon, or a
closed polyhedron. Insertion only ever moves the state forward through that
list; removal may move it backward.

Hull maintenance is performed by live mesh surgery: a closed loop of edges
(the seam) is computed to separate the faces that survive an operation from
the faces that must go, the doomed region is torn out, and the resulting
hole is capped, either by coning new faces over a freshly inserted point or
by sealing it with new coplanar-aware faces. Collaborators that keep
derived per-face state can observe surgery through a Callback, which is
invoked synchronously once per created and once per destroyed face.

A Polyhedron is not safe for concurrent use. Mutating operations leave the
mesh in transient intermediate states, and external references to vertices,
edges or faces are invalidated by any mutating call.
*/
package p3

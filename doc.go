// Package junctionforest groups 3-D points by distance.
//
// Given points written as "x,y,z", it answers two questions about the complete
// graph whose edge weights are squared Euclidean distances:
//
//   - Which groups form after joining the n closest pairs? (junction.Cluster)
//   - Which edge of the minimum spanning tree finally makes every point one
//     connected group? (junction.Connect)
//
// Under the hood, everything is organized under small leaf-to-root packages:
//
//	space/      Point, PointSet, exact 128-bit squared distance, text parser
//	pairwise/   one Edge per unordered pair of points
//	dsu/        disjoint-set union with union by rank
//	edgeheap/   ascending min-heap of edges with a total tie-break
//	junction/   Cluster Builder and Spanning Connector
//
// Quick ASCII example:
//
//	0 ─1─ 1 ────9──── 2        squared: 0–1 = 1, 1–2 = 81, 0–2 = 100
//
// Kruskal joins 0–1 first and 1–2 second; 1–2 is the closing edge.
//
// The junctions command (cmd/junctions) reads a point file and prints both answers.
package junctionforest

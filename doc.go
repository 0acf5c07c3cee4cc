// Package ndtess seeds tessellations of labeled 2D images.
//
// A tessellation (watershed-style region growing) starts from an image in
// which some pixels already carry a label and grows those labels into the
// background. ndtess computes the starting point of that process: the
// frontier, a priority queue of weighted edges from every labeled pixel to
// each of its 4-connected neighbors.
//
// Under the hood, everything is organized under two subpackages:
//
//	raster/   — bounds-checked 2D grids of labels and cost fields
//	frontier/ — the frontier builder and its max-heap container
//
// Quick example:
//
//	labels, _ := raster.FromSlice([]int{5, 0}, 2, 1)
//	q, _ := frontier.Build(labels)
//	e, _ := q.Pop() // {Weight: 1, X: 1, Y: 0, Label: 5}
//
// Label growth after seeding is out of scope; Frontier.Push is the hook a
// growth loop uses to extend the queue.
//
//	go get github.com/katalvlaran/ndtess
package ndtess

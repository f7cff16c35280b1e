// Package bigraph checks the extra place-graph/link-graph consistency
// constraint that a plain subgraph mapping does not enforce on its
// own: pattern vertices at the tail of the index range are "anchors"
// (bigraphical link points), and every connected piece of the
// non-anchor pattern graph that touches a given anchor must map as a
// whole into a single connected piece of the target graph touching
// that anchor's image, never split across two.
package bigraph

import "subgraphsolver/graph"

// VertexToVertexMapping mirrors homomorphism.VertexToVertexMapping
// without importing the core package, keeping bigraph a leaf
// dependency that model and homomorphism both sit above.
type VertexToVertexMapping map[int]int

// Checker holds the precomputed pattern- and target-side structure
// Check reads. The target-side grouping of an anchor image's
// neighbours is recomputed on every Check call.
type Checker struct {
	anchorThreshold int
	patternGroups   map[int][]int // anchor -> non-anchor pattern vertices adjacent to it, grouped implicitly by patternComponentOf
	patternComponentOf []int
	targetSize      int
	targetAdjacency []map[int]bool
}

// NewChecker builds a Checker. patternEdges and targetEdges are
// undirected edge lists (label and direction are irrelevant to this
// check, which only cares about connectivity).
func NewChecker(patternSize, linkCount int, patternEdges [][2]int, targetSize int, targetEdges [][2]int) *Checker {
	anchorThreshold := patternSize - linkCount

	placeGraph := graph.NewGraph(patternSize)
	for _, e := range patternEdges {
		if e[0] < anchorThreshold && e[1] < anchorThreshold {
			placeGraph.AddEdge(e[0], e[1])
		}
	}
	componentOf := placeGraph.ComponentIndex()

	neighboursOfAnchor := make(map[int][]int)
	for _, e := range patternEdges {
		u, v := e[0], e[1]
		switch {
		case u >= anchorThreshold && v < anchorThreshold:
			neighboursOfAnchor[u] = append(neighboursOfAnchor[u], v)
		case v >= anchorThreshold && u < anchorThreshold:
			neighboursOfAnchor[v] = append(neighboursOfAnchor[v], u)
		}
	}

	targetAdjacency := make([]map[int]bool, targetSize)
	for i := range targetAdjacency {
		targetAdjacency[i] = make(map[int]bool)
	}
	for _, e := range targetEdges {
		targetAdjacency[e[0]][e[1]] = true
		targetAdjacency[e[1]][e[0]] = true
	}

	return &Checker{
		anchorThreshold:    anchorThreshold,
		patternGroups:      neighboursOfAnchor,
		patternComponentOf: componentOf,
		targetSize:         targetSize,
		targetAdjacency:    targetAdjacency,
	}
}

// Check reports whether mapping respects every anchor's place/link
// consistency requirement. A mapping with no anchors (link_count==0)
// trivially passes.
func (c *Checker) Check(mapping VertexToVertexMapping) bool {
	for anchor, neighbours := range c.patternGroups {
		if len(neighbours) == 0 {
			continue
		}
		target, ok := mapping[anchor]
		if !ok {
			continue
		}

		groups := make(map[int][]int)
		for _, p := range neighbours {
			groups[c.patternComponentOf[p]] = append(groups[c.patternComponentOf[p]], p)
		}

		targetComponentOf := c.componentsAmongTargetNeighbours(target)

		for _, group := range groups {
			seenTargetComponent := -1
			for _, p := range group {
				tp, ok := mapping[p]
				if !ok {
					return false
				}
				if !c.targetAdjacency[target][tp] {
					return false
				}
				tc := targetComponentOf[tp]
				if seenTargetComponent == -1 {
					seenTargetComponent = tc
				} else if seenTargetComponent != tc {
					return false
				}
			}
		}
	}
	return true
}

// componentsAmongTargetNeighbours partitions the target neighbours of
// anchorImage, using only edges between those neighbours, so that two
// neighbours reachable from each other without leaving the
// neighbourhood count as the same link region.
func (c *Checker) componentsAmongTargetNeighbours(anchorImage int) []int {
	local := graph.NewGraph(c.targetSize)
	for u := range c.targetAdjacency[anchorImage] {
		for v := range c.targetAdjacency[u] {
			if v != anchorImage && c.targetAdjacency[anchorImage][v] {
				local.AddEdge(u, v)
			}
		}
	}
	return local.ComponentIndex()
}

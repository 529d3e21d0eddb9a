package cluster

import (
	"math"
	"sort"
)

// hdbscan runs density-based clustering over the laid-out points and
// returns a label per point. Noise points get label -1; cluster labels
// start at 0. Clusters are selected by excess of mass over the condensed
// dendrogram, so nested structure resolves to the most persistent groups.
func hdbscan(coords [][]float64, minClusterSize, minSamples int) []int {
	n := len(coords)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	if n < minClusterSize {
		return labels
	}

	core := coreDistances(coords, minSamples)
	edges := minimumSpanningTree(coords, core)
	nodes := singleLinkage(edges, n)
	clusters := condense(nodes, n, minClusterSize)
	selected := selectClusters(clusters)

	// Map selected cluster ids to compact labels in creation order
	labelOf := make(map[int]int)
	for _, id := range selected {
		labelOf[id] = len(labelOf)
	}

	// A point belongs to the nearest selected ancestor of the cluster
	// it fell out of
	for _, c := range clusters {
		for _, exit := range c.exits {
			cur := c.id
			for cur >= 0 {
				if label, ok := labelOf[cur]; ok {
					labels[exit.point] = label
					break
				}
				cur = clusters[cur].parent
			}
		}
	}

	return labels
}

// coreDistances returns each point's distance to its minSamples-th
// nearest neighbor.
func coreDistances(coords [][]float64, minSamples int) []float64 {
	n := len(coords)
	k := minSamples
	if k >= n {
		k = n - 1
	}

	core := make([]float64, n)
	dists := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		dists = dists[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dists = append(dists, euclidean(coords[i], coords[j]))
		}
		sort.Float64s(dists)
		core[i] = dists[k-1]
	}
	return core
}

type mstEdge struct {
	a, b   int
	weight float64
}

// minimumSpanningTree builds an MST over the mutual reachability graph
// using Prim's algorithm.
func minimumSpanningTree(coords [][]float64, core []float64) []mstEdge {
	n := len(coords)
	inTree := make([]bool, n)
	best := make([]float64, n)
	bestFrom := make([]int, n)
	for i := range best {
		best[i] = math.Inf(1)
	}

	edges := make([]mstEdge, 0, n-1)
	cur := 0
	inTree[0] = true
	for len(edges) < n-1 {
		// Relax edges out of the newly added point
		for j := 0; j < n; j++ {
			if inTree[j] {
				continue
			}
			d := euclidean(coords[cur], coords[j])
			// Mutual reachability distance
			if core[cur] > d {
				d = core[cur]
			}
			if core[j] > d {
				d = core[j]
			}
			if d < best[j] {
				best[j] = d
				bestFrom[j] = cur
			}
		}

		// Pick the closest point outside the tree
		next := -1
		for j := 0; j < n; j++ {
			if !inTree[j] && (next == -1 || best[j] < best[next]) {
				next = j
			}
		}
		edges = append(edges, mstEdge{bestFrom[next], next, best[next]})
		inTree[next] = true
		cur = next
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })
	return edges
}

// dendroNode is one node of the single-linkage tree. Leaves are points
// 0..n-1; internal nodes follow.
type dendroNode struct {
	left, right int
	dist        float64
	size        int
}

// singleLinkage merges MST edges in ascending weight order into a
// dendrogram. Returns all 2n-1 nodes; the last one is the root.
func singleLinkage(edges []mstEdge, n int) []dendroNode {
	nodes := make([]dendroNode, n, 2*n-1)
	for i := 0; i < n; i++ {
		nodes[i] = dendroNode{left: -1, right: -1, size: 1}
	}

	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	// component root -> node id representing it
	nodeOf := make([]int, 2*n-1)
	for i := range nodeOf {
		nodeOf[i] = i
	}

	for _, e := range edges {
		ra, rb := find(e.a), find(e.b)
		na, nb := nodeOf[ra], nodeOf[rb]
		nodes = append(nodes, dendroNode{
			left:  na,
			right: nb,
			dist:  e.weight,
			size:  nodes[na].size + nodes[nb].size,
		})
		parent[ra] = rb
		nodeOf[find(rb)] = len(nodes) - 1
	}

	return nodes
}

type pointExit struct {
	point  int
	lambda float64
}

// condensedCluster is a cluster of the condensed dendrogram. exits
// records, for every point ever in the cluster, the density level at
// which it left.
type condensedCluster struct {
	id        int
	parent    int
	birth     float64
	children  []int
	exits     []pointExit
	stability float64
}

// condense collapses the single-linkage tree, keeping only splits where
// both sides reach minClusterSize. Smaller branches fall out of their
// cluster point by point.
func condense(nodes []dendroNode, n, minClusterSize int) []*condensedCluster {
	root := len(nodes) - 1

	var clusters []*condensedCluster
	newCluster := func(parent int, birth float64) *condensedCluster {
		c := &condensedCluster{id: len(clusters), parent: parent, birth: birth}
		clusters = append(clusters, c)
		return c
	}

	var leavesUnder func(node int, out *[]int)
	leavesUnder = func(node int, out *[]int) {
		if nodes[node].left == -1 {
			*out = append(*out, node)
			return
		}
		leavesUnder(nodes[node].left, out)
		leavesUnder(nodes[node].right, out)
	}

	dump := func(c *condensedCluster, node int, lambda float64) {
		var leaves []int
		leavesUnder(node, &leaves)
		for _, p := range leaves {
			c.exits = append(c.exits, pointExit{p, lambda})
			c.stability += lambda - c.birth
		}
	}

	var walk func(node int, c *condensedCluster)
	walk = func(node int, c *condensedCluster) {
		if nodes[node].left == -1 {
			return
		}
		lambda := math.Inf(1)
		if nodes[node].dist > 0 {
			lambda = 1.0 / nodes[node].dist
		}

		left, right := nodes[node].left, nodes[node].right
		leftBig := nodes[left].size >= minClusterSize
		rightBig := nodes[right].size >= minClusterSize

		switch {
		case leftBig && rightBig:
			// True split: all members leave the parent here and the
			// two sides continue as new clusters
			dump(c, node, lambda)
			childL := newCluster(c.id, lambda)
			childR := newCluster(c.id, lambda)
			c.children = append(c.children, childL.id, childR.id)
			walk(left, childL)
			walk(right, childR)
		case leftBig:
			dump(c, right, lambda)
			walk(left, c)
		case rightBig:
			dump(c, left, lambda)
			walk(right, c)
		default:
			dump(c, node, lambda)
		}
	}

	rootCluster := newCluster(-1, 0)
	walk(root, rootCluster)
	return clusters
}

// selectClusters picks the flat clustering by excess of mass: a cluster
// survives when its own stability exceeds the combined stability of its
// children. The root is never selected.
func selectClusters(clusters []*condensedCluster) []int {
	if len(clusters) == 0 {
		return nil
	}

	selected := make([]bool, len(clusters))

	// Clusters are created parent-first, so reverse order is bottom-up
	for i := len(clusters) - 1; i >= 1; i-- {
		c := clusters[i]
		if len(c.children) == 0 {
			selected[i] = true
			continue
		}
		var childSum float64
		for _, child := range c.children {
			childSum += clusters[child].stability
		}
		if c.stability >= childSum {
			selected[i] = true
			unselectDescendants(clusters, selected, i)
		} else {
			c.stability = childSum
		}
	}

	var result []int
	for i := 1; i < len(clusters); i++ {
		if selected[i] {
			result = append(result, i)
		}
	}
	return result
}

func unselectDescendants(clusters []*condensedCluster, selected []bool, id int) {
	for _, child := range clusters[id].children {
		selected[child] = false
		unselectDescendants(clusters, selected, child)
	}
}

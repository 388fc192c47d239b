package order

import (
	"sort"

	"github.com/katalvlaran/arglayout/graph"
)

// constraints is a union-find over vertices that must stay contiguous
// within their rank: conjunct children sharing a container (spec
// 4.E.2's start-c/end-c sentinels), and a warrant's source(s) together
// with its sink (the sentinel pair start-rs/end-rs). Both relations are
// fully known from the graph's conjunct/warrant structure before
// sorting begins, so they are resolved once here rather than rediscovered
// by a per-step violated-constraint scan.
type constraints struct {
	parent map[string]string
}

func buildConstraints(g *graph.Graph) *constraints {
	c := &constraints{parent: make(map[string]string)}

	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsConjunctNode {
			continue
		}
		kids := g.Children(id)
		for i := 1; i < len(kids); i++ {
			c.union(kids[0], kids[i])
		}
	}

	for _, id := range g.Vertices() {
		v := g.Vertex(id)
		if v == nil || !v.IsWarrantSink {
			continue
		}
		for _, e := range g.InEdges(id) {
			c.union(id, e.From)
		}
	}

	return c
}

func (c *constraints) find(x string) string {
	p, ok := c.parent[x]
	if !ok || p == x {
		return x
	}
	root := c.find(p)
	c.parent[x] = root

	return root
}

func (c *constraints) union(a, b string) {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return
	}
	c.parent[ra] = rb
}

// group is one contiguous run of vertices that sort as a single unit.
type group struct {
	members []string
	bary    float64
	hasBary bool
}

// sortLayer computes a new left-to-right order for current: each
// vertex's barycenter is the mean fixed-layer index of its neighbors
// (falling back to its current position when it has none), contiguity
// groups are sorted and expanded as a unit, and members within a group
// are ordered by their own barycenter (spec 4.E.4).
func sortLayer(cons *constraints, current []string, neighborsOf func(string) []string, fixedIdx map[string]int) []string {
	pos := make(map[string]int, len(current))
	for i, id := range current {
		pos[id] = i
	}

	bary := make(map[string]float64, len(current))
	for _, id := range current {
		ns := neighborsOf(id)
		if len(ns) == 0 {
			bary[id] = float64(pos[id])

			continue
		}
		sum := 0.0
		for _, n := range ns {
			sum += float64(fixedIdx[n])
		}
		bary[id] = sum / float64(len(ns))
	}

	groups := make(map[string]*group)
	var order []string
	for _, id := range current {
		root := cons.find(id)
		gp, ok := groups[root]
		if !ok {
			gp = &group{}
			groups[root] = gp
			order = append(order, root)
		}
		gp.members = append(gp.members, id)
	}
	for _, root := range order {
		gp := groups[root]
		sum, cnt := 0.0, 0
		for _, m := range gp.members {
			sum += bary[m]
			cnt++
		}
		if cnt > 0 {
			gp.bary = sum / float64(cnt)
			gp.hasBary = true
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return groups[order[i]].bary < groups[order[j]].bary })

	result := make([]string, 0, len(current))
	for _, root := range order {
		gp := groups[root]
		sort.SliceStable(gp.members, func(i, j int) bool { return bary[gp.members[i]] < bary[gp.members[j]] })
		result = append(result, gp.members...)
	}

	return result
}

package disjointset

import "fmt"

// Dense implements a disjoint-set over the fixed integer range [0, n)
// with path splitting and union by rank. Parent and rank live in flat
// arrays sized once at construction; capacity never changes.
type Dense struct {
	parent []int
	rank   []int
}

var _ Set[int] = (*Dense)(nil)

// NewDense creates a Dense engine of capacity n, with every index in
// [0, n) starting as its own singleton set.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidArgument)
	}
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &Dense{parent: parent, rank: rank}, nil
}

// Len returns the engine's capacity n.
func (d *Dense) Len() int {
	return len(d.parent)
}

// Find returns the representative (root) of the set containing x.
// Path splitting redirects every visited node to its grandparent, so
// subsequent queries are nearly O(1). Out-of-range indices are rejected
// before any traversal.
func (d *Dense) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}
	return d.find(x), nil
}

// find walks x to its root, halving the path as it goes.
// Callers must have validated x.
func (d *Dense) find(x int) int {
	for d.parent[x] != x {
		x, d.parent[x] = d.parent[x], d.parent[d.parent[x]]
	}
	return x
}

// Union merges the sets containing x and y. Union by rank keeps the
// trees balanced; when ranks tie, y's root is attached under x's root
// and x's root gains a rank. Both indices are validated before either
// set is touched, so a failed call leaves the partition unchanged.
func (d *Dense) Union(x, y int) error {
	if err := d.check(x); err != nil {
		return err
	}
	if err := d.check(y); err != nil {
		return err
	}
	rx := d.find(x)
	ry := d.find(y)
	if rx == ry {
		return nil
	}
	// Attach the shorter tree under the taller one.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	return nil
}

// Match reports whether x and y belong to the same set. Both indices are
// validated before either is resolved.
func (d *Dense) Match(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}
	return d.find(x) == d.find(y), nil
}

// Sets returns the partition of all indices in [0, n) grouped by
// representative. Every index appears in exactly one group.
func (d *Dense) Sets() [][]int {
	groups := make(map[int][]int)
	for i := range d.parent {
		root := d.find(i)
		groups[root] = append(groups[root], i)
	}
	sets := make([][]int, 0, len(groups))
	for _, members := range groups {
		sets = append(sets, members)
	}
	return sets
}

// check rejects indices outside [0, n).
func (d *Dense) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, x)
	}
	return nil
}

package disjointset

// Sparse implements a disjoint-set over an open domain of comparable
// keys, with path splitting and union by rank backed by maps. Storage
// starts empty and grows on demand: the first Find, Union, or Match
// involving an unseen key registers it as its own singleton set, and the
// registration is permanent. Key identity is Go equality for K.
type Sparse[K comparable] struct {
	parent map[K]K
	rank   map[K]int
}

var _ Set[string] = (*Sparse[string])(nil)

// NewSparse creates an empty Sparse engine over key type K.
func NewSparse[K comparable]() *Sparse[K] {
	return &Sparse[K]{
		parent: make(map[K]K),
		rank:   make(map[K]int),
	}
}

// Len returns the number of registered keys.
func (s *Sparse[K]) Len() int {
	return len(s.parent)
}

// Find returns the representative (root) of the set containing x. An
// unseen key is registered as its own singleton and returned directly.
// The error is always nil; it exists to satisfy Set.
func (s *Sparse[K]) Find(x K) (K, error) {
	return s.find(x), nil
}

// find registers x if unseen, otherwise walks x to its root while
// redirecting each visited key to its grandparent.
func (s *Sparse[K]) find(x K) K {
	if _, ok := s.parent[x]; !ok {
		s.parent[x] = x
		s.rank[x] = 0
		return x
	}
	for {
		par := s.parent[x]
		if par == x {
			return x
		}
		s.parent[x] = s.parent[par]
		x = par
	}
}

// Union merges the sets containing x and y, registering either key first
// if unseen. Union by rank keeps the trees balanced; when ranks tie, y's
// root is attached under x's root and x's root gains a rank.
func (s *Sparse[K]) Union(x, y K) error {
	rx := s.find(x)
	ry := s.find(y)
	if rx == ry {
		return nil
	}
	// Attach the shorter tree under the taller one.
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	return nil
}

// Match reports whether x and y belong to the same set. Unseen keys are
// registered as singletons before the comparison, so matching two new
// keys reports false and leaves both registered.
func (s *Sparse[K]) Match(x, y K) (bool, error) {
	return s.find(x) == s.find(y), nil
}

// Sets returns the partition of every registered key grouped by
// representative. Keys never mentioned to the engine do not appear.
func (s *Sparse[K]) Sets() [][]K {
	groups := make(map[K][]K)
	for x := range s.parent {
		root := s.find(x)
		groups[root] = append(groups[root], x)
	}
	sets := make([][]K, 0, len(groups))
	for _, members := range groups {
		sets = append(sets, members)
	}
	return sets
}

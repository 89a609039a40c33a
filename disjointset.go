// Package disjointset provides disjoint-set (union-find) engines for
// partitioning elements into equivalence classes. It supports merging
// classes, resolving representatives, testing membership, and extracting
// the full partition, all in near-constant amortized time.
//
// Two engines implement the same operation surface. Dense works over the
// fixed integer range [0, n) with flat arrays and strict bounds checking.
// Sparse works over an open domain of comparable keys and registers
// elements lazily on first mention. New selects between them from an
// optional size hint.
//
// Find and Sets shorten parent chains as they traverse, so even logically
// read-only operations rewrite internal links. The rewiring never changes
// any answer; it only makes later lookups cheaper. Because of it, no
// operation is read-only: engines are not safe for concurrent use, and
// callers must provide their own synchronization.
package disjointset

import (
	"errors"
	"fmt"
)

// Version is the library version.
const Version = "1.0.0"

// ErrInvalidArgument is returned when a constructor receives an unusable
// size hint.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIndexOutOfRange is returned when a dense engine operation references
// an index outside [0, n).
var ErrIndexOutOfRange = errors.New("index out of range")

// Set is the operation surface shared by both engines. Exactly two
// implementations exist: Dense over a fixed integer range and Sparse over
// an open key domain.
type Set[K comparable] interface {
	// Find returns the representative of the set containing x.
	Find(x K) (K, error)

	// Union merges the sets containing x and y. Merging elements already
	// in the same set is a no-op.
	Union(x, y K) error

	// Match reports whether x and y belong to the same set.
	Match(x, y K) (bool, error)

	// Sets returns the current partition as a list of member groups.
	// Neither group order nor order within a group is guaranteed.
	Sets() [][]K
}

// New creates an engine selected by an optional size hint. With no hint,
// or a nil hint, it returns a Sparse engine over int keys. With a positive
// int hint n it returns a Dense engine of capacity n. Any other hint is
// rejected with ErrInvalidArgument.
func New(sizeHint ...any) (Set[int], error) {
	if len(sizeHint) > 1 {
		return nil, fmt.Errorf("%w: expected at most one size hint, got %d", ErrInvalidArgument, len(sizeHint))
	}
	if len(sizeHint) == 0 || sizeHint[0] == nil {
		return NewSparse[int](), nil
	}
	n, ok := sizeHint[0].(int)
	if !ok {
		return nil, fmt.Errorf("%w: n must be an integer or none", ErrInvalidArgument)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidArgument)
	}
	return NewDense(n)
}

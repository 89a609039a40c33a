// Package workload generates reproducible union/find operation streams
// for exercising disjoint-set engines. A workload is parameterized by the
// element universe [0, n), the total operation count, and the fraction of
// operations that are unions; generation is deterministic for a given
// random source, so the same seed always replays the same stream.
package workload

import (
	"fmt"
	"math/rand"
)

// Kind identifies an operation in a generated stream.
type Kind int

const (
	// OpUnion merges the sets containing two elements.
	OpUnion Kind = iota
	// OpFind resolves one element's representative.
	OpFind
)

// Op is a single generated operation. B is meaningful only for OpUnion.
type Op struct {
	Kind Kind
	A, B int
}

// Engine is the slice of disjoint-set behavior a workload needs.
// Both engine types satisfy it for int keys.
type Engine interface {
	Find(x int) (int, error)
	Union(x, y int) error
}

// Scenario names one point on the union:find mix axis.
type Scenario struct {
	Name       string  `toml:"name"`
	UnionRatio float64 `toml:"union_ratio"`
}

// DefaultScenarios returns the five reference mixes, ranging from almost
// pure merging to almost pure lookup.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Union Heavy", UnionRatio: 0.999},
		{Name: "Union Bias", UnionRatio: 0.9},
		{Name: "Mixed", UnionRatio: 0.5},
		{Name: "Find Bias", UnionRatio: 0.1},
		{Name: "Find Heavy", UnionRatio: 0.001},
	}
}

// Generate builds a shuffled stream of total operations in which an
// unionRatio fraction are unions and the remainder are finds. Element
// indices are drawn uniformly from [0, n). The union count is the floor
// of total*unionRatio, so extreme ratios still leave the other kind a
// small presence.
func Generate(rng *rand.Rand, unionRatio float64, n, total int) []Op {
	unions := int(float64(total) * unionRatio)
	ops := make([]Op, 0, total)
	for i := 0; i < unions; i++ {
		ops = append(ops, Op{Kind: OpUnion, A: rng.Intn(n), B: rng.Intn(n)})
	}
	for i := unions; i < total; i++ {
		ops = append(ops, Op{Kind: OpFind, A: rng.Intn(n)})
	}
	rng.Shuffle(len(ops), func(i, j int) {
		ops[i], ops[j] = ops[j], ops[i]
	})
	return ops
}

// Run replays ops against e, stopping at the first failure.
func Run(e Engine, ops []Op) error {
	for _, op := range ops {
		switch op.Kind {
		case OpUnion:
			if err := e.Union(op.A, op.B); err != nil {
				return fmt.Errorf("union(%d, %d): %w", op.A, op.B, err)
			}
		case OpFind:
			if _, err := e.Find(op.A); err != nil {
				return fmt.Errorf("find(%d): %w", op.A, err)
			}
		}
	}
	return nil
}

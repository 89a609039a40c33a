package workload

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/papapumpkin/disjointset"
)

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()
	a := Generate(rand.New(rand.NewSource(42)), 0.5, 100, 1000)
	b := Generate(rand.New(rand.NewSource(42)), 0.5, 100, 1000)
	if len(a) != len(b) {
		t.Fatalf("stream lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("op %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateMix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ratio      float64
		total      int
		wantUnions int
	}{
		{0.999, 100000, 99900},
		{0.9, 1000, 900},
		{0.5, 1000, 500},
		{0.1, 1000, 100},
		{0.001, 100000, 100},
		{0, 50, 0},
		{1, 50, 50},
	}
	for _, tc := range cases {
		ops := Generate(rand.New(rand.NewSource(1)), tc.ratio, 10, tc.total)
		if len(ops) != tc.total {
			t.Errorf("ratio %v: got %d ops, want %d", tc.ratio, len(ops), tc.total)
		}
		unions := 0
		for _, op := range ops {
			if op.Kind == OpUnion {
				unions++
			}
		}
		if unions != tc.wantUnions {
			t.Errorf("ratio %v: got %d unions, want %d", tc.ratio, unions, tc.wantUnions)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	t.Parallel()
	const n = 17
	ops := Generate(rand.New(rand.NewSource(3)), 0.5, n, 2000)
	for _, op := range ops {
		if op.A < 0 || op.A >= n {
			t.Fatalf("op %+v: A outside [0, %d)", op, n)
		}
		if op.Kind == OpUnion && (op.B < 0 || op.B >= n) {
			t.Fatalf("op %+v: B outside [0, %d)", op, n)
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("replays against both engines", func(t *testing.T) {
		t.Parallel()
		ops := Generate(rand.New(rand.NewSource(9)), 0.5, 50, 500)

		d, err := disjointset.NewDense(50)
		if err != nil {
			t.Fatal(err)
		}
		if err := Run(d, ops); err != nil {
			t.Errorf("dense replay: %v", err)
		}
		if err := Run(disjointset.NewSparse[int](), ops); err != nil {
			t.Errorf("sparse replay: %v", err)
		}
	})

	t.Run("propagates engine errors", func(t *testing.T) {
		t.Parallel()
		d, err := disjointset.NewDense(2)
		if err != nil {
			t.Fatal(err)
		}
		ops := []Op{
			{Kind: OpUnion, A: 0, B: 1},
			{Kind: OpFind, A: 99},
		}
		if err := Run(d, ops); !errors.Is(err, disjointset.ErrIndexOutOfRange) {
			t.Errorf("Run error = %v, want ErrIndexOutOfRange", err)
		}
	})
}

func TestDefaultScenarios(t *testing.T) {
	t.Parallel()
	scenarios := DefaultScenarios()
	if len(scenarios) != 5 {
		t.Fatalf("got %d scenarios, want 5", len(scenarios))
	}
	want := []Scenario{
		{Name: "Union Heavy", UnionRatio: 0.999},
		{Name: "Union Bias", UnionRatio: 0.9},
		{Name: "Mixed", UnionRatio: 0.5},
		{Name: "Find Bias", UnionRatio: 0.1},
		{Name: "Find Heavy", UnionRatio: 0.001},
	}
	for i, sc := range scenarios {
		if sc != want[i] {
			t.Errorf("scenario %d = %+v, want %+v", i, sc, want[i])
		}
	}
}

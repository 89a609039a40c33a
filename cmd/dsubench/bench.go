package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/disjointset"
	"github.com/papapumpkin/disjointset/internal/workload"
)

// Engine labels attached to results.
const (
	engineDense  = "dense"
	engineSparse = "sparse"
)

// Result captures one engine's timing for one scenario. Results from a
// single invocation share a run ID so log lines can be grouped later.
type Result struct {
	Timestamp time.Time `json:"ts"`
	RunID     string    `json:"run_id"`
	Scenario  string    `json:"scenario"`
	Engine    string    `json:"engine"`
	N         int       `json:"n"`
	Ops       int       `json:"ops"`
	Seconds   float64   `json:"seconds"`
}

// runBench loads the suite, applies flag overrides, executes it against
// both engines, and renders the outcome. With --watch it then blocks and
// re-runs on every suite file change.
func runBench(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applyFlagOverrides(cmd, &cfg)

	run := func() error {
		suite, err := workload.LoadSuite(cfg.Scenarios)
		if err != nil {
			return err
		}
		applySuiteOverrides(cmd, &suite)
		if err := suite.Validate(); err != nil {
			return err
		}

		results, err := runSuite(suite)
		if err != nil {
			return err
		}

		if cfg.Out != "" {
			log, err := openResultLog(cfg.Out)
			if err != nil {
				return err
			}
			defer log.Close()
			for _, r := range results {
				if err := log.Write(r); err != nil {
					return err
				}
			}
		}

		renderer := chartRenderer{Width: 48, UseColor: !cfg.NoColor}
		fmt.Fprint(cmd.OutOrStdout(), renderer.Render(suite, results))
		return nil
	}

	if err := run(); err != nil {
		return err
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchSuite(cmd, cfg.Scenarios, run)
	}
	return nil
}

// runSuite replays every scenario against both engines and returns one
// result per engine per scenario, in suite order. Scenarios draw from a
// single seeded source, so a suite's streams are reproducible end to end.
func runSuite(suite workload.Suite) ([]Result, error) {
	runID := uuid.NewString()
	rng := rand.New(rand.NewSource(suite.Seed))
	results := make([]Result, 0, 2*len(suite.Scenarios))

	for _, sc := range suite.Scenarios {
		ops := workload.Generate(rng, sc.UnionRatio, suite.N, suite.Ops)

		dense, err := disjointset.NewDense(suite.N)
		if err != nil {
			return nil, err
		}
		elapsed, err := timeReplay(dense, ops)
		if err != nil {
			return nil, fmt.Errorf("scenario %q on %s: %w", sc.Name, engineDense, err)
		}
		results = append(results, newResult(runID, sc.Name, engineDense, suite, elapsed))

		elapsed, err = timeReplay(disjointset.NewSparse[int](), ops)
		if err != nil {
			return nil, fmt.Errorf("scenario %q on %s: %w", sc.Name, engineSparse, err)
		}
		results = append(results, newResult(runID, sc.Name, engineSparse, suite, elapsed))
	}
	return results, nil
}

func newResult(runID, scenario, engine string, suite workload.Suite, elapsed time.Duration) Result {
	return Result{
		Timestamp: time.Now().UTC(),
		RunID:     runID,
		Scenario:  scenario,
		Engine:    engine,
		N:         suite.N,
		Ops:       suite.Ops,
		Seconds:   elapsed.Seconds(),
	}
}

// timeReplay measures a full replay of ops against e.
func timeReplay(e workload.Engine, ops []workload.Op) (time.Duration, error) {
	start := time.Now()
	if err := workload.Run(e, ops); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// resultLog appends benchmark results to a JSONL file. It is safe for
// concurrent use. A nil *resultLog is a valid no-op log.
type resultLog struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
}

// openResultLog opens the JSONL file at path for appending, creating it
// if needed.
func openResultLog(path string) (*resultLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening result log %s: %w", path, err)
	}
	return &resultLog{file: f, enc: json.NewEncoder(f)}, nil
}

// Write appends a single result line. Calling Write on a nil log is a
// no-op.
func (l *resultLog) Write(r Result) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enc.Encode(r); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling Close on a nil log is a
// no-op.
func (l *resultLog) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing result log: %w", err)
	}
	return nil
}

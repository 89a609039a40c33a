package workload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultSuitePath is the conventional location for a benchmark suite file.
const DefaultSuitePath = "dsubench.toml"

// ErrInvalidSuite is returned when a suite's parameters cannot produce a
// runnable workload.
var ErrInvalidSuite = errors.New("invalid suite")

// Suite describes a full benchmark run: the element universe, the
// operation count per scenario, the seed, and the scenarios to sweep.
type Suite struct {
	N         int        `toml:"n"`
	Ops       int        `toml:"ops"`
	Seed      int64      `toml:"seed"`
	Scenarios []Scenario `toml:"scenarios"`
}

// DefaultSuite returns the reference workload: 10000 elements, 100000
// operations per scenario, seed 42, and the five default scenarios.
func DefaultSuite() Suite {
	return Suite{
		N:         10000,
		Ops:       100000,
		Seed:      42,
		Scenarios: DefaultScenarios(),
	}
}

// Validate checks that the suite can produce a runnable workload.
func (s Suite) Validate() error {
	if s.N <= 0 {
		return fmt.Errorf("%w: n must be positive, got %d", ErrInvalidSuite, s.N)
	}
	if s.Ops <= 0 {
		return fmt.Errorf("%w: ops must be positive, got %d", ErrInvalidSuite, s.Ops)
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalidSuite)
	}
	for _, sc := range s.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("%w: scenario with empty name", ErrInvalidSuite)
		}
		if sc.UnionRatio < 0 || sc.UnionRatio > 1 {
			return fmt.Errorf("%w: scenario %q union_ratio %v outside [0, 1]", ErrInvalidSuite, sc.Name, sc.UnionRatio)
		}
	}
	return nil
}

// LoadSuite reads a suite from the given path. If the file does not
// exist, it returns DefaultSuite and no error, so callers can run with
// nothing on disk. Fields absent from the file keep their default
// values.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSuite(), nil
		}
		return Suite{}, fmt.Errorf("reading suite %s: %w", path, err)
	}

	s := DefaultSuite()
	// Decode scenarios from scratch so the file's list replaces the
	// default one instead of growing it.
	s.Scenarios = nil
	if err := toml.Unmarshal(data, &s); err != nil {
		return Suite{}, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	if len(s.Scenarios) == 0 {
		s.Scenarios = DefaultScenarios()
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// SaveSuite writes a suite to the given path, creating parent
// directories as needed.
func SaveSuite(path string, s Suite) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling suite: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing suite %s: %w", path, err)
	}
	return nil
}

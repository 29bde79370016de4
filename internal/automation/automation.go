package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/san-kum/blastsim/internal/analysis"
	"github.com/san-kum/blastsim/internal/config"
	"github.com/san-kum/blastsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario defines a batch of explosions to simulate
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Run  `yaml:"runs"`
}

// Run is a single entry in a scenario. Preset supplies chamber and force
// unless they are set explicitly.
type Run struct {
	Name    string `yaml:"name"`
	Chamber string `yaml:"chamber"`
	Preset  string `yaml:"preset"`
	Force   int    `yaml:"force"`
}

// Outcome is the result of one scenario run. Err is set when the run was
// rejected; Frames is nil in that case.
type Outcome struct {
	Run     Run
	Frames  []string
	Summary analysis.Summary
	Err     error
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}
	return &scenario, nil
}

// Resolve fills chamber and force from the preset named by r.
func (r Run) Resolve() (sim.Config, error) {
	cfg := sim.Config{Chamber: r.Chamber, Force: r.Force}
	if r.Preset != "" {
		p, ok := config.GetPreset(r.Preset)
		if !ok {
			return cfg, fmt.Errorf("unknown preset: %s (available: %v)", r.Preset, config.ListPresets())
		}
		if cfg.Chamber == "" {
			cfg.Chamber = p.Chamber
		}
		if cfg.Force == 0 {
			cfg.Force = p.Force
		}
	}
	return cfg, nil
}

// RunScenario simulates every run of the scenario on up to workers goroutines.
// Outcomes are returned in scenario order. A rejected run records its error
// and does not stop the others.
func RunScenario(ctx context.Context, scenario *Scenario, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(scenario.Runs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = runOne(scenario.Runs[idx])
			}
		}()
	}

	var err error
dispatch:
	for i := range scenario.Runs {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return outcomes, nil
}

func runOne(r Run) Outcome {
	out := Outcome{Run: r}
	cfg, err := r.Resolve()
	if err != nil {
		out.Err = err
		return out
	}
	frames, err := sim.Simulate(cfg.Chamber, cfg.Force)
	if err != nil {
		out.Err = err
		return out
	}
	out.Frames = frames
	out.Summary = analysis.Summarize(frames)
	return out
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// SweepResult holds the summary of one chamber at one force
type SweepResult struct {
	Force   int
	Summary analysis.Summary
}

// SweepForce simulates chamber at every force in [sim.MinForce, sim.MaxForce].
func SweepForce(chamber string) ([]SweepResult, error) {
	results := make([]SweepResult, 0, sim.MaxForce-sim.MinForce+1)
	for f := sim.MinForce; f <= sim.MaxForce; f++ {
		frames, err := sim.Simulate(chamber, f)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{Force: f, Summary: analysis.Summarize(frames)})
	}
	return results, nil
}

// RandomScenario builds n runs over random chambers of the given length with
// bomb probability density. The same seed always yields the same scenario.
func RandomScenario(n, length int, density float64, force int, seed int64) *Scenario {
	rng := rand.New(rand.NewSource(seed))
	s := &Scenario{
		Name: fmt.Sprintf("random-%d", seed),
		Runs: make([]Run, n),
	}
	for i := range s.Runs {
		b := make([]byte, length)
		for j := range b {
			if rng.Float64() < density {
				b[j] = sim.Bomb
			} else {
				b[j] = sim.Empty
			}
		}
		s.Runs[i] = Run{
			Name:    fmt.Sprintf("trial-%d", i),
			Chamber: string(b),
			Force:   force,
		}
	}
	return s
}

package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"cleangrid/internal/sims/cleaning"
)

type scenario struct {
	agents       int
	dirtyPercent int
}

func (s scenario) String() string {
	return fmt.Sprintf("n=%d dirty=%d%%", s.agents, s.dirtyPercent)
}

type scenarioResult struct {
	scenario

	runs      int
	cleaned   int
	meanSteps float64 // among runs that finished cleaning
	meanMoves float64
	meanClean float64 // final percent clean across all runs
}

func main() {
	width := flag.Int("w", 10, "grid width")
	height := flag.Int("h", 10, "grid height")
	maxSteps := flag.Int("steps", 200, "step budget per run")
	runs := flag.Int("runs", 100, "seeds per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	agents := flag.Int("n", 5, "agent count for -trace")
	dirty := flag.Int("dirty", 100, "dirty percentage for -trace")
	trace := flag.Int64("trace", 0, "print the metric series of a single run with this seed, then exit")
	flag.Parse()

	baseCfg := cleaning.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Params.MaxSteps = *maxSteps

	if *trace != 0 {
		cfg := baseCfg
		cfg.Params.Agents = *agents
		cfg.Params.DirtyPercent = *dirty
		if err := runTrace(cfg, *trace); err != nil {
			log.Fatal(err)
		}
		return
	}

	agentOptions := []int{1, 2, 5, 10, 20}
	dirtyOptions := []int{25, 50, 75, 100}

	var sets []scenario
	for _, n := range agentOptions {
		for _, d := range dirtyOptions {
			sets = append(sets, scenario{agents: n, dirtyPercent: d})
		}
	}

	fmt.Printf("Sweeping %d scenarios on a %dx%d grid (%d workers, %d runs each, budget %d)\n",
		len(sets), baseCfg.Width, baseCfg.Height, *workers, *runs, *maxSteps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				res, err := runScenario(baseCfg, s, *runs)
				if err != nil {
					log.Fatal(err)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].agents != all[j].agents {
			return all[i].agents < all[j].agents
		}
		return all[i].dirtyPercent < all[j].dirtyPercent
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-18s cleaned %3d/%3d  steps %7.1f  moves %9.1f  final clean %6.2f%%\n",
			res.scenario, res.cleaned, res.runs, res.meanSteps, res.meanMoves, res.meanClean)
	}
}

// runScenario runs one scenario across sequential seeds, reusing one model.
func runScenario(base cleaning.Config, s scenario, runs int) (scenarioResult, error) {
	cfg := base
	cfg.Params.Agents = s.agents
	cfg.Params.DirtyPercent = s.dirtyPercent

	model, err := cleaning.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}

	res := scenarioResult{scenario: s, runs: runs}
	var stepsSum, movesSum, cleanSum float64
	for r := 0; r < runs; r++ {
		model.Reset(int64(r + 1))
		for !model.Terminated() {
			model.Step()
		}
		if model.DirtyCount() == 0 {
			res.cleaned++
			stepsSum += float64(model.CurrentStep())
		}
		movesSum += float64(model.TotalMoves())
		cleanSum += model.PercentClean()
	}
	if res.cleaned > 0 {
		res.meanSteps = stepsSum / float64(res.cleaned)
	}
	res.meanMoves = movesSum / float64(runs)
	res.meanClean = cleanSum / float64(runs)
	return res, nil
}

// runTrace prints one run's snapshot series as CSV.
func runTrace(cfg cleaning.Config, seed int64) error {
	model, err := cleaning.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	model.Reset(seed)
	for !model.Terminated() {
		model.Step()
	}

	fmt.Println("step,dirty,percent_clean,total_moves")
	for _, snap := range model.History() {
		fmt.Printf("%d,%d,%.2f,%d\n", snap.Step, snap.DirtyCount, snap.PercentClean, snap.TotalMoves)
	}
	return nil
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command primcheck validates the conversion kernels on this host.
//
// Usage:
//
//	primcheck -iterations 500 -seed 42
//	primcheck -large -workers 8 -v
//	primcheck -report run.json
//
// Every check runs for the given number of iterations, each on a
// pseudo-random region derived from the seed: round trips, optimized versus
// generic equivalence, guard integrity, AVC444 combine/split consistency and
// error handling. primcheck exits with status 1 if any iteration fails.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ajroetker/go-prim/prim"
	"github.com/ajroetker/go-prim/prim/contrib/yuv"
	"github.com/ajroetker/go-prim/prim/primtest"
)

var (
	iterations = flag.Int("iterations", 100, "Iterations per check")
	seed       = flag.Uint64("seed", 0, "Seed for region sizes and content (0: derive from the clock)")
	large      = flag.Bool("large", false, "Use regions up to 1920x1080 instead of 256x256")
	workers    = flag.Int("workers", 0, "Concurrent iterations (default: GOMAXPROCS)")
	failFast   = flag.Bool("failfast", false, "Stop at the first failure")
	reportPath = flag.String("report", "", "Write a JSON report to this file")
	verbose    = flag.Bool("v", false, "Log every failure and per-check timing")
)

func logV(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// result aggregates the iterations of one check.
type result struct {
	Check      string        `json:"check"`
	Iterations int           `json:"iterations"`
	Failures   int           `json:"failures"`
	FirstError string        `json:"first_error,omitempty"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

type report struct {
	RunID      string    `json:"run_id"`
	Seed       uint64    `json:"seed"`
	Level      string    `json:"dispatch_level"`
	CPU        []string  `json:"cpu_features"`
	Kernels    string    `json:"optimized_set"`
	Optimized  []string  `json:"optimized_slots"`
	Limit      prim.ROI  `json:"limit"`
	Started    time.Time `json:"started"`
	Results    []*result `json:"results"`
	Incomplete bool      `json:"incomplete,omitempty"`
}

func main() {
	flag.Parse()

	if *iterations <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -iterations must be positive\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	limit := prim.ROI{Width: 256, Height: 256}
	if *large {
		limit = prim.ROI{Width: 1920, Height: 1080}
	}

	rep := &report{
		RunID:     uuid.New().String(),
		Seed:      *seed,
		Level:     prim.CurrentName(),
		CPU:       prim.CPUFeatures(),
		Kernels:   yuv.Optimized().Name(),
		Optimized: yuv.SlotsOf(yuv.Optimized()),
		Limit:     limit,
		Started:   time.Now(),
	}
	logV("run %s: seed %d, level %s (cpu %v), %s slots %v",
		rep.RunID, rep.Seed, rep.Level, rep.CPU, rep.Kernels, rep.Optimized)

	runErr := run(context.Background(), rep, limit)

	failed := runErr != nil
	color := term.IsTerminal(int(os.Stdout.Fd()))
	for _, res := range rep.Results {
		status := "PASS"
		if res.Failures > 0 {
			status = "FAIL"
			failed = true
		}
		if color {
			status = colorize(status)
		}
		fmt.Printf("%s %-12s %d/%d  %v\n", status, res.Check, res.Iterations-res.Failures, res.Iterations, res.Elapsed.Round(time.Millisecond))
		if res.FirstError != "" {
			fmt.Printf("     %s\n", res.FirstError)
		}
	}
	fmt.Printf("seed %d (%s, %s)\n", rep.Seed, rep.Level, rep.Kernels)

	if *reportPath != "" {
		if err := writeReport(*reportPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
	}
	if failed {
		os.Exit(1)
	}
}

func colorize(status string) string {
	if status == "PASS" {
		return "\x1b[32m" + status + "\x1b[0m"
	}
	return "\x1b[31m" + status + "\x1b[0m"
}

// run executes every check for the configured iterations. Each iteration
// gets its own generator, seeded from the run seed, the check and the
// iteration, so a failure replays with the same -seed.
func run(ctx context.Context, rep *report, limit prim.ROI) error {
	g, ctx := errgroup.WithContext(ctx)
	n := *workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(n)

	var mu sync.Mutex
	for ci, c := range checks {
		res := &result{Check: c.name}
		rep.Results = append(rep.Results, res)
		for i := range *iterations {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				r := primtest.NewRand(*seed + uint64(ci)<<32 + uint64(i))
				start := time.Now()
				err := c.run(r, limit)
				elapsed := time.Since(start)

				mu.Lock()
				defer mu.Unlock()
				res.Iterations++
				res.Elapsed += elapsed
				if err == nil {
					return nil
				}
				res.Failures++
				if res.FirstError == "" {
					res.FirstError = fmt.Sprintf("iteration %d: %v", i, err)
				}
				logV("%s iteration %d: %v", c.name, i, err)
				if *failFast {
					return fmt.Errorf("%s iteration %d: %w", c.name, i, err)
				}
				return nil
			})
		}
	}
	err := g.Wait()
	for _, res := range rep.Results {
		if res.Iterations < *iterations {
			rep.Incomplete = true
		}
		logV("%s: %d iterations in %v", res.Check, res.Iterations, res.Elapsed)
	}
	return err
}

func writeReport(path string, rep *report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

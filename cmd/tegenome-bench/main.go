// tegenome-bench is a throughput and scaling test for the tegenome
// backends. It drives long random operation scripts against the ring and
// array genomes and reports ops/sec plus the segment growth that long
// scripts cause (segments are never merged or reclaimed, so the ring's
// per-operation cost grows with the mutation count).
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/kaslund/tegenome"
)

const (
	initialLength = 1_000_000
	warmupOps     = 1_000
	benchOps      = 50_000
	maxElemLen    = 50
	seed          = 1
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("tegenome Benchmark and Stress Test")
	fmt.Println("==================================")
	fmt.Printf("Initial genome length: %d\n", initialLength)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	var results []BenchResult

	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Millisecond))
		results = append(results, result)
	}

	fmt.Println("Ring backend:")
	ring, err := tegenome.New(initialLength)
	if err != nil {
		fmt.Printf("Failed to create ring genome: %v\n", err)
		os.Exit(1)
	}
	runBench("Mixed ops (ring)", func() BenchResult {
		return benchMixed("Mixed ops (ring)", ring, benchOps)
	})
	runBench("Render (ring)", func() BenchResult {
		return benchRender("Render (ring)", ring)
	})
	stats := ring.Stats()
	results = append(results, BenchResult{
		Name: "Segment growth (ring)",
		Extra: fmt.Sprintf("%d segments over %d positions after %d ops",
			stats.Segments, stats.Length, warmupOps+benchOps),
	})

	fmt.Println("Array backend:")
	array, err := tegenome.NewArray(initialLength)
	if err != nil {
		fmt.Printf("Failed to create array genome: %v\n", err)
		os.Exit(1)
	}
	// The dense backend pays O(length) per op; keep the op count small
	// enough to finish in reasonable time.
	runBench("Mixed ops (array)", func() BenchResult {
		return benchMixed("Mixed ops (array)", array, benchOps/10)
	})
	runBench("Render (array)", func() BenchResult {
		return benchRender("Render (array)", array)
	})

	fmt.Println()
	fmt.Println("Results:")
	fmt.Println("--------")
	for _, r := range results {
		fmt.Println(r)
	}
}

// benchMixed drives a weighted random mix of the three mutating
// operations, the same mix for every backend and run (fixed seed).
func benchMixed(name string, g tegenome.Genome, ops int) BenchResult {
	rng := rand.New(rand.NewSource(seed))

	// Warm up: seed the genome with some elements so copies and
	// disables have targets.
	var issued uint64
	for i := 0; i < warmupOps; i++ {
		if _, err := g.InsertTE(rng.Int63n(g.Length()), 1+rng.Int63n(maxElemLen)); err == nil {
			issued++
		}
	}

	start := time.Now()
	for i := 0; i < ops; i++ {
		switch rng.Intn(10) {
		case 0, 1, 2:
			if _, err := g.InsertTE(rng.Int63n(g.Length()), 1+rng.Int63n(maxElemLen)); err == nil {
				issued++
			}
		case 3, 4, 5, 6, 7:
			te := tegenome.TEID(1 + rng.Int63n(int64(issued)))
			offset := rng.Int63n(2*g.Length()+1) - g.Length()
			if _, err := g.CopyTE(te, offset); err == nil {
				issued++
			}
		default:
			g.DisableTE(tegenome.TEID(1 + rng.Int63n(int64(issued))))
		}
	}
	return BenchResult{Name: name, Duration: time.Since(start), Ops: ops}
}

func benchRender(name string, g tegenome.Genome) BenchResult {
	start := time.Now()
	out := g.Render()
	return BenchResult{
		Name:     name,
		Duration: time.Since(start),
		Extra:    fmt.Sprintf("%d chars", len(out)),
	}
}

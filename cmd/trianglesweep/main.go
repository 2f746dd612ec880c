// Command trianglesweep runs the triangle-rotate algorithm across a grid of
// side lengths and seeds in parallel, checking that every run terminates
// within budget and that exactly one particle ever became the center. The
// shape of the terminal configuration is not checked.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"trianglerotate/internal/trianglerotate"
)

type job struct {
	sideLength int
	setCenter  bool
	seed       int64
}

type result struct {
	job         job
	activations int
	ok          bool
	failure     string
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxActivations := flag.Int("max-activations", 2_000_000, "activation budget per run")
	maxSide := flag.Int("max-side", 22, "largest side length to sweep (values not of form 3k+1 are skipped)")
	seeds := flag.Int64("seeds", 8, "number of seeds to try per side length")
	flag.Parse()

	var jobs []job
	for side := 4; side <= *maxSide; side++ {
		if side%3 != 1 {
			continue
		}
		for _, setCenter := range []bool{false, true} {
			for s := int64(0); s < *seeds; s++ {
				jobs = append(jobs, job{sideLength: side, setCenter: setCenter, seed: s})
			}
		}
	}

	fmt.Printf("Sweeping %d runs (%d workers, budget %d activations)\n", len(jobs), *workers, *maxActivations)

	jobCh := make(chan job)
	resultCh := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				resultCh <- runJob(j, *maxActivations)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	go func() {
		for _, j := range jobs {
			jobCh <- j
		}
		close(jobCh)
	}()

	var all []result
	failures := 0
	for res := range resultCh {
		all = append(all, res)
		if !res.ok {
			failures++
			fmt.Printf("FAIL side=%d setCenter=%v seed=%d: %s\n", res.job.sideLength, res.job.setCenter, res.job.seed, res.failure)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].activations > all[j].activations })
	fmt.Printf("\n%d/%d runs passed\n", len(all)-failures, len(all))
	if len(all) > 0 {
		fmt.Printf("slowest: side=%d setCenter=%v seed=%d activations=%d\n",
			all[0].job.sideLength, all[0].job.setCenter, all[0].job.seed, all[0].activations)
	}
	if failures > 0 {
		panic(fmt.Sprintf("%d runs failed", failures))
	}
}

func runJob(j job, maxActivations int) result {
	res := result{job: j}

	func() {
		defer func() {
			if r := recover(); r != nil {
				res.failure = fmt.Sprintf("panic: %v", r)
			}
		}()

		cfg := trianglerotate.Config{SideLength: j.sideLength, SetCenter: j.setCenter, Seed: j.seed}
		sys := cfg.New()

		activations := 0
		for !sys.HasTerminated() {
			if activations >= maxActivations {
				res.failure = fmt.Sprintf("did not terminate within %d activations", maxActivations)
				return
			}
			sys.Activate()
			activations++
		}
		res.activations = activations

		// bendCenter moves the center straight on to Finish in the
		// activation in which it emits its bend tokens
		// (internal/trianglerotate/bend.go), so by
		// termination no particle is still in state Center; EverBeenCenter is
		// what survives to check the center-uniqueness invariant.
		centers := 0
		for i := 0; i < sys.Size(); i++ {
			if sys.At(i).EverBeenCenter() {
				centers++
			}
		}
		if centers != 1 {
			res.failure = fmt.Sprintf("expected exactly 1 particle to have ever been center, found %d", centers)
			return
		}
		res.ok = true
	}()

	return res
}

// Command trianglesim runs the triangle-rotate amoebot algorithm headlessly:
// it builds a triangle, activates particles until the system terminates or a
// activation budget is exhausted, and reports the outcome.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"trianglerotate/internal/trianglerotate"
)

func main() {
	sideLength := flag.Int("side", 7, "triangle side length, must be 3k+1")
	setCenter := flag.Bool("set-center", false, "start with the center preplaced instead of discovering it")
	seed := flag.Int64("seed", 1337, "seed for orientation and epoch randomness")
	maxActivations := flag.Int("max-activations", 1_000_000, "activation budget before giving up")
	flag.Parse()

	if err := run(*sideLength, *setCenter, *seed, *maxActivations); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(sideLength int, setCenter bool, seed int64, maxActivations int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.WithMessage(e, "trianglesim")
				return
			}
			err = fmt.Errorf("trianglesim: %v", r)
		}
	}()

	cfg := trianglerotate.Config{SideLength: sideLength, SetCenter: setCenter, Seed: seed}
	sys := cfg.New()

	activations := 0
	for !sys.HasTerminated() {
		if activations >= maxActivations {
			return fmt.Errorf("trianglesim: did not terminate within %d activations", maxActivations)
		}
		sys.Activate()
		activations++
	}

	fmt.Fprintf(os.Stdout, "terminated after %d activations, %d particles\n", activations, sys.Size())
	return nil
}

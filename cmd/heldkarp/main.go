package main

import (
	"errors"
	"log"
	"os"

	"github.com/katalvlaran/heldkarp/tsp"
)

// exitNoTour is the status for a valid instance without a Hamiltonian cycle.
const exitNoTour = 2

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, tsp.ErrNoFeasibleTour) {
			os.Exit(exitNoTour)
		}
		log.Fatalf("Error: %v\n", err)
	}
}

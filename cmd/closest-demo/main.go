// Command closest-demo is the end-to-end demonstration of lvlgeo:
// generate a small reproducible point set, run both closest-pair
// strategies, print and compare their answers, render the scatter
// plot, then run the wall-clock benchmark ladder.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlgeo/bench"
	"github.com/katalvlaran/lvlgeo/closestpair"
	"github.com/katalvlaran/lvlgeo/pointgen"
	"github.com/katalvlaran/lvlgeo/viz"
)

const (
	demoSeed   = 42
	demoPoints = 20
	demoMin    = 0
	demoMax    = 10
	plotPath   = "closest_pair.png"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "closest-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	// A fixed seed keeps every run of the demo identical.
	points, err := pointgen.Uniform(demoPoints,
		pointgen.WithBounds(demoMin, demoMax),
		pointgen.WithSeed(demoSeed),
	)
	if err != nil {
		return err
	}

	bf := closestpair.BruteForce(points)
	fmt.Printf("[Brute Force]      distance = %.4f, pair = (%v, %v)\n", bf.Distance, bf.Pair.A, bf.Pair.B)

	dnc := closestpair.DivideAndConquer(points)
	fmt.Printf("[Divide & Conquer] distance = %.4f, pair = (%v, %v)\n", dnc.Distance, dnc.Pair.A, dnc.Pair.B)

	if err := viz.SavePNG(plotPath, points, dnc); err != nil {
		return err
	}
	fmt.Printf("plot written to %s\n\n", plotPath)

	fmt.Println("Benchmarking Brute Force vs. Divide & Conquer:")

	return bench.Run(os.Stdout, bench.WithSeed(demoSeed))
}

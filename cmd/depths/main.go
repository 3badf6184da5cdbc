package main

import (
	"fmt"
	"log"
	"os"

	"github.com/scole66/adventofcode/internal/scan"
	"github.com/scole66/adventofcode/internal/sweep"
)

func main() {
	report, err := scan.Ints(os.Stdin, scan.SkipInvalid)
	if err != nil {
		log.Fatal(err)
	}

	increases, err := sweep.IncreaseCount(report)
	if err != nil {
		log.Fatalf("puzzle 1: %v (%d readings)", err, len(report))
	}
	windows, err := sweep.WindowCount(report)
	if err != nil {
		log.Fatalf("puzzle 2: %v (%d readings)", err, len(report))
	}

	fmt.Printf("Puzzle 1: %d\n", increases)
	fmt.Printf("Puzzle 2: %d\n", windows)
}

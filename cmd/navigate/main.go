package main

import (
	"fmt"
	"log"
	"os"

	"github.com/scole66/adventofcode/internal/course"
	"github.com/scole66/adventofcode/internal/scan"
)

func main() {
	cmds, err := course.Read(os.Stdin, scan.SkipInvalid)
	if err != nil {
		log.Fatal(err)
	}

	pos := course.Plot(cmds)
	fmt.Printf("Part 1: Ending position H: %d D: %d; Result %d\n",
		pos.Horizontal, pos.Depth, pos.Product())

	aimed := course.PlotWithAim(cmds)
	fmt.Printf("Part 2: Ending position H: %d D: %d; Result %d\n",
		aimed.Horizontal, aimed.Depth, aimed.Product())
}

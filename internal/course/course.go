package course

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/scole66/adventofcode/internal/scan"
)

// Direction is the keyword part of a navigation command.
type Direction string

const (
	Up      Direction = "up"
	Down    Direction = "down"
	Forward Direction = "forward"
)

// Command is one planned course step, e.g. "forward 5".
type Command struct {
	Dir    Direction `parser:"@('up'|'down'|'forward')"`
	Amount int       `parser:"@Int"`
}

var parser = participle.MustBuild[Command]()

// ParseLine parses a single trimmed line as a Command. Anything other than a
// direction keyword followed by a non-negative integer is an error.
func ParseLine(line string) (Command, error) {
	cmd, err := parser.ParseString("input", line)
	if err != nil {
		return Command{}, err
	}
	return *cmd, nil
}

// Read decodes one Command per line from r. Lines that do not parse are
// handled per policy.
func Read(r io.Reader, policy scan.Policy) ([]Command, error) {
	var cmds []Command
	err := scan.ForLines(r, func(lineno int, text string) error {
		cmd, err := ParseLine(text)
		if err != nil {
			if policy == scan.Strict {
				return fmt.Errorf("line %d: %w: %q", lineno, scan.ErrMalformedLine, text)
			}
			return nil
		}
		cmds = append(cmds, cmd)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

// Position tracks the submarine without aim: up and down change depth
// directly.
type Position struct {
	Horizontal int
	Depth      int
}

func (p Position) Apply(cmd Command) Position {
	switch cmd.Dir {
	case Forward:
		p.Horizontal += cmd.Amount
	case Down:
		p.Depth += cmd.Amount
	case Up:
		p.Depth -= cmd.Amount
	}
	return p
}

func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

// AimedPosition tracks the submarine with aim: up and down steer, forward
// moves and dives by amount times the current aim.
type AimedPosition struct {
	Horizontal int
	Depth      int
	Aim        int
}

func (p AimedPosition) Apply(cmd Command) AimedPosition {
	switch cmd.Dir {
	case Forward:
		p.Horizontal += cmd.Amount
		p.Depth += cmd.Amount * p.Aim
	case Down:
		p.Aim += cmd.Amount
	case Up:
		p.Aim -= cmd.Amount
	}
	return p
}

func (p AimedPosition) Product() int {
	return p.Horizontal * p.Depth
}

// Plot folds the commands over a Position starting at the origin.
func Plot(cmds []Command) Position {
	var pos Position
	for _, cmd := range cmds {
		pos = pos.Apply(cmd)
	}
	return pos
}

// PlotWithAim folds the commands over an AimedPosition starting at the
// origin with aim 0.
func PlotWithAim(cmds []Command) AimedPosition {
	var pos AimedPosition
	for _, cmd := range cmds {
		pos = pos.Apply(cmd)
	}
	return pos
}

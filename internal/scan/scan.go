package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrMalformedLine reports a line that does not match the expected input
// shape. Under Strict it aborts the read; under SkipInvalid it never
// surfaces.
var ErrMalformedLine = errors.New("malformed line")

// Policy decides what happens to lines that fail to parse.
type Policy int

const (
	// SkipInvalid drops malformed lines with no state change. This matches
	// the puzzle inputs, which are expected to be well formed anyway.
	SkipInvalid Policy = iota
	// Strict fails on the first malformed line.
	Strict
)

type Kind int

const (
	Int Kind = iota
	Word
	Illegal
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "Int"
	case Word:
		return "Word"
	default:
		return "Illegal"
	}
}

// Token is one lexed unit of an input line.
type Token struct {
	Kind    Kind
	Literal string
	Column  int
}

var lexer = mustLexer()

func mustLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\r]+`), skip)
	l.Add([]byte(`(-)?[0-9]+`), tokAction(Int))
	l.Add([]byte(`[a-zA-Z]+`), tokAction(Word))
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Kind:    kind,
			Literal: string(m.Bytes),
			Column:  m.StartColumn,
		}, nil
	}
}

// Tokenize lexes a single line. Text the lexer cannot recognize produces a
// trailing Illegal token and ends the scan.
func Tokenize(line string) []Token {
	scanner, err := lexer.Scanner([]byte(line))
	if err != nil {
		return []Token{{Kind: Illegal, Literal: line}}
	}
	var tokens []Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			return tokens
		}
		if err != nil {
			return append(tokens, Token{Kind: Illegal, Literal: err.Error()})
		}
		tokens = append(tokens, tok.(Token))
	}
}

// ForLines calls fn for each trimmed, non-empty line of r, with 1-based line
// numbers counting every physical line.
func ForLines(r io.Reader, fn func(lineno int, text string) error) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := fn(lineno, text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Ints reads one integer per line from r and returns them in input order.
// Lines that are not exactly one integer are handled per policy.
func Ints(r io.Reader, policy Policy) ([]int, error) {
	var seq []int
	err := ForLines(r, func(lineno int, text string) error {
		tokens := Tokenize(text)
		if len(tokens) != 1 || tokens[0].Kind != Int {
			if policy == Strict {
				return fmt.Errorf("line %d: %w: %q", lineno, ErrMalformedLine, text)
			}
			return nil
		}
		val, err := strconv.Atoi(tokens[0].Literal)
		if err != nil {
			if policy == Strict {
				return fmt.Errorf("line %d: %w: %q", lineno, ErrMalformedLine, text)
			}
			return nil
		}
		seq = append(seq, val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

package scan

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		kinds []Kind
	}{
		{"199", []Kind{Int}},
		{"-3", []Kind{Int}},
		{"forward 5", []Kind{Word, Int}},
		{"12 34", []Kind{Int, Int}},
		{"up", []Kind{Word}},
		{"", nil},
		{"   ", nil},
		{"199!", []Kind{Int, Illegal}},
	}

	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if len(tokens) != len(tt.kinds) {
			t.Fatalf("Tokenize(%q) = %v, want kinds %v", tt.input, tokens, tt.kinds)
		}
		for i, kind := range tt.kinds {
			if tokens[i].Kind != kind {
				t.Fatalf("Tokenize(%q) token %d = %v, want %v", tt.input, i, tokens[i].Kind, kind)
			}
		}
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tokens := Tokenize("forward 5")
	if tokens[0].Literal != "forward" || tokens[1].Literal != "5" {
		t.Fatalf("unexpected literals %q %q", tokens[0].Literal, tokens[1].Literal)
	}
}

func TestIntsSkipInvalid(t *testing.T) {
	input := "199\n\n200\nabc\n12 34\n208\n"
	got, err := Ints(strings.NewReader(input), SkipInvalid)
	if err != nil {
		t.Fatalf("Ints: %v", err)
	}
	want := []int{199, 200, 208}
	if !slices.Equal(got, want) {
		t.Fatalf("Ints = %v, want %v", got, want)
	}
}

func TestIntsStrict(t *testing.T) {
	input := "199\n\n200\nabc\n208\n"
	_, err := Ints(strings.NewReader(input), Strict)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("Ints strict err = %v, want ErrMalformedLine", err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("Ints strict err = %v, want line number 4", err)
	}
}

func TestIntsNegative(t *testing.T) {
	got, err := Ints(strings.NewReader("-3\n7\n"), Strict)
	if err != nil {
		t.Fatalf("Ints: %v", err)
	}
	if !slices.Equal(got, []int{-3, 7}) {
		t.Fatalf("Ints = %v, want [-3 7]", got)
	}
}

func TestIntsEmptyInput(t *testing.T) {
	got, err := Ints(strings.NewReader(""), Strict)
	if err != nil {
		t.Fatalf("Ints: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Ints = %v, want empty", got)
	}
}

func TestIntsRoundTrip(t *testing.T) {
	input := "199\nnoise\n200\n\n208\n"
	first, err := Ints(strings.NewReader(input), SkipInvalid)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}

	var sb strings.Builder
	for _, val := range first {
		sb.WriteString(strconv.Itoa(val))
		sb.WriteByte('\n')
	}
	second, err := Ints(strings.NewReader(sb.String()), Strict)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !slices.Equal(first, second) {
		t.Fatalf("round trip %v != %v", first, second)
	}
}

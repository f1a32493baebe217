package puzzle

import (
	"reflect"
	"strings"
	"testing"
)

// trailing blanks matter in the rendering, so the expected text is
// assembled line by line rather than written as one raw literal
var classicRendering = strings.Join([]string{
	"      |       |   8   ",
	"6 8   | 4 7   |   2   ",
	"  1 9 | 5   8 | 6 4 7 ",
	"------+-------+------",
	"  6   | 9     |     4 ",
	"3 4 2 | 6 8   |       ",
	"1 9   |   5   | 8 3   ",
	"------+-------+------",
	"      | 7 2   | 4   3 ",
	"    6 |     5 |   1   ",
	"    3 | 8 9 1 | 5     ",
	"",
}, "\n")

func TestBoardString(t *testing.T) {
	s, e := New(mustGrid(t, classicStartValues))
	if e != nil {
		t.Fatalf("Failed to create solver: %v", e)
	}
	if got := s.String(); got != classicRendering {
		t.Errorf("Rendered board is:\n%q\nexpected:\n%q", got, classicRendering)
	}
}

func TestParseGridBare(t *testing.T) {
	text := "000000000" +
		"900507030" +
		"000100607" +
		"040060082" +
		"670000013" +
		"380010090" +
		"705008000" +
		"020309008" +
		"000000000"
	g, e := ParseGrid(text)
	if e != nil {
		t.Fatalf("Failed to parse bare digit string: %v", e)
	}
	if !reflect.DeepEqual(g, mustGrid(t, chronTwoValues)) {
		t.Errorf("Parsed grid is %v", g)
	}
}

func TestParseGridBlanksAndLayout(t *testing.T) {
	// dots and underscores mean blank, separators and whitespace
	// are ignored
	text := `
. 1 . | 5 . 6 | . 2 .
_ _ _ | _ _ 3 | _ 1 8
0 0 0 | 0 7 0 | 0 0 6
------+-------+------
. . 5 | . . . | . 3 .
. . 8 | . 9 . | 7 . .
. 6 . | . . . | 4 . .
------+-------+------
5 . . | . 4 . | . . .
6 4 . | 2 . . | . . .
. 3 . | 9 . 1 | . 8 .
`
	g, e := ParseGrid(text)
	if e != nil {
		t.Fatalf("Failed to parse formatted grid: %v", e)
	}
	if !reflect.DeepEqual(g, mustGrid(t, threeStarValues)) {
		t.Errorf("Parsed grid is %v", g)
	}
}

func TestParseGridRoundTrip(t *testing.T) {
	// a fully solved board has no blank squares, so its rendering
	// parses back to the same digits
	s, e := New(mustGrid(t, classicStartValues))
	if e != nil {
		t.Fatalf("Failed to create solver: %v", e)
	}
	if e := s.Solve(); e != nil {
		t.Fatalf("Solve failed: %v", e)
	}
	g, e := ParseGrid(s.String())
	if e != nil {
		t.Fatalf("Failed to parse rendered board: %v", e)
	}
	if !reflect.DeepEqual(g, mustGrid(t, classicSolvedValues)) {
		t.Errorf("Round trip produced %v", g)
	}
}

func TestParseGridErrors(t *testing.T) {
	tcs := []struct {
		text      string
		condition ErrorCondition
	}{
		{"12345", WrongSizeCondition},
		{strings.Repeat("1", 82), WrongSizeCondition},
		{strings.Repeat("0", 80) + "x", BadDigitCondition},
		{"", WrongSizeCondition},
	}
	for i, tc := range tcs {
		_, e := ParseGrid(tc.text)
		if e == nil {
			t.Errorf("case %d: parse succeeded", i+1)
			continue
		}
		err, ok := e.(Error)
		if !ok {
			t.Errorf("case %d: error has wrong type: %v", i+1, e)
			continue
		}
		if err.Condition != tc.condition {
			t.Errorf("case %d: error condition is %v (expected %v): %v",
				i+1, err.Condition, tc.condition, e)
		}
	}
}

func TestGridFromValuesErrors(t *testing.T) {
	if _, e := GridFromValues(make([]int, 80)); e == nil {
		t.Errorf("80 values accepted")
	}
	vs := make([]int, 81)
	vs[17] = 12
	if _, e := GridFromValues(vs); e == nil {
		t.Errorf("digit 12 accepted")
	}
	vs[17] = -3
	if _, e := GridFromValues(vs); e == nil {
		t.Errorf("digit -3 accepted")
	}
}

func TestValuesMarkdown(t *testing.T) {
	s, e := New(mustGrid(t, classicStartValues))
	if e != nil {
		t.Fatalf("Failed to create solver: %v", e)
	}
	md := s.Board().ValuesMarkdown()
	lines := strings.Split(strings.TrimRight(md, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("Markdown table has %d lines (expected 11):\n%s", len(lines), md)
	}
	if !strings.HasPrefix(lines[0], "|     |  1  |") {
		t.Errorf("Markdown header is %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "|**a**") || !strings.HasPrefix(lines[10], "|**i**") {
		t.Errorf("Markdown row headers are wrong:\n%s", md)
	}
	if !strings.Contains(lines[2], "|  8  ") {
		t.Errorf("Markdown first row misses the 8:\n%s", lines[2])
	}
}

package Codec

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want []int64
		errs []ParseError
	}{
		{"", nil, nil},
		{"1,2,x,4", []int64{1, 2, 4}, []ParseError{{"x", NotANumber}}},
		{" 3 ,\t-4,+7 ", []int64{3, -4, 7}, nil},
		{"1,2\r\n3,4\n\n5,", []int64{1, 2, 3, 4, 5}, nil},
		{"9223372036854775807,-9223372036854775808", []int64{math.MaxInt64, math.MinInt64}, nil},
		{"9223372036854775808,1,-9223372036854775809", []int64{1},
			[]ParseError{{"9223372036854775808", OutOfRange}, {"-9223372036854775809", OutOfRange}}},
		{"1.5,0x10,--2,1 2", nil,
			[]ParseError{{"1.5", NotANumber}, {"0x10", NotANumber}, {"--2", NotANumber}, {"1 2", NotANumber}}},
	}
	for _, c := range cases {
		vs, errs := Parse(c.text)
		if !slices.Equal(vs, c.want) {
			t.Errorf("Parse(%q) values = %v, want %v", c.text, vs, c.want)
		}
		if !slices.Equal(errs, c.errs) {
			t.Errorf("Parse(%q) errors = %v, want %v", c.text, errs, c.errs)
		}
	}
}

func TestSerialize(t *testing.T) {
	cases := []struct {
		vs   []int64
		want string
	}{
		{nil, ""},
		{[]int64{0}, "0"},
		{[]int64{1, -2, 3}, "1,-2,3"},
		{[]int64{math.MinInt64, math.MaxInt64}, "-9223372036854775808,9223372036854775807"},
	}
	for _, c := range cases {
		if got := Serialize(c.vs); got != c.want {
			t.Errorf("Serialize(%v) = %q, want %q", c.vs, got, c.want)
		}
	}
	if got := string(AppendSerialized([]byte("x:"), []int64{4, 5})); got != "x:4,5" {
		t.Errorf("AppendSerialized gave %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for n := range 200 {
		vs := make([]int64, n)
		for i := range vs {
			vs[i] = int64(rg.Uint64())
		}
		got, errs := Parse(Serialize(vs))
		if len(errs) != 0 {
			t.Fatalf("round trip of %v gave errors %v", vs, errs)
		}
		if !slices.Equal(got, vs) {
			t.Fatalf("round trip of %v gave %v", vs, got)
		}
	}
}

func TestParseError_Error(t *testing.T) {
	if got := (ParseError{"x", NotANumber}).Error(); got != `"x": not a number` {
		t.Errorf("got %q", got)
	}
	if got := (ParseError{"99999999999999999999", OutOfRange}).Error(); got != `"99999999999999999999": out of range` {
		t.Errorf("got %q", got)
	}
}

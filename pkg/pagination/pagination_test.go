package pagination

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   Params
		want Params
	}{
		{Params{}, Params{Page: 1, Limit: 24}},
		{Params{Page: -3, Limit: 500}, Params{Page: 1, Limit: 100}},
		{Params{Page: 4, Limit: 10}, Params{Page: 4, Limit: 10}},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("Normalize(%+v) = %+v want %+v", tc.in, got, tc.want)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}

func TestOffsetSaturatesInsteadOfOverflowing(t *testing.T) {
	cases := []Params{
		{Page: 1 << 62, Limit: 24},
		{Page: math.MaxInt, Limit: 100},
		{Page: math.MaxInt/24 + 2, Limit: 24},
	}
	for _, p := range cases {
		if got := p.Offset(); got != math.MaxInt {
			t.Fatalf("Offset(%+v) = %d want math.MaxInt", p, got)
		}
	}
	if got := (Params{Page: math.MaxInt/24 + 1, Limit: 24}).Offset(); got != math.MaxInt/24*24 {
		t.Fatalf("expected largest exact offset, got %d", got)
	}
}

func TestMetaFor(t *testing.T) {
	meta := Params{Page: 2, Limit: 2}.MetaFor(5)
	want := Meta{Total: 5, Page: 2, Limit: 2, TotalPages: 3}
	if meta != want {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if got := TotalPages(0, 24); got != 0 {
		t.Fatalf("expected zero pages for empty result, got %d", got)
	}
	if got := TotalPages(48, 24); got != 2 {
		t.Fatalf("expected exact division to yield 2, got %d", got)
	}
}

package domain

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"water, tea leaves", []string{"water", "tea leaves"}},
		{"boil, steep, serve", []string{"boil", "steep", "serve"}},
		{"salt,", []string{"salt", ""}},
		{"a,,b", []string{"a", "", "b"}},
		{"  single  ", []string{"single"}},
		{"", []string{""}},
	}
	for _, c := range cases {
		if got := SplitList(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitList(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRecipeLines(t *testing.T) {
	r := Recipe{Ingredients: []string{"water", "tea leaves"}, Steps: []string{"boil", "steep"}}
	if got := r.IngredientsLine(); got != "water, tea leaves" {
		t.Fatalf("unexpected ingredients line %q", got)
	}
	if got := r.StepsLine(); got != "boil, steep" {
		t.Fatalf("unexpected steps line %q", got)
	}
}

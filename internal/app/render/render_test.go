package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

var tea = domain.Recipe{
	ID:          "a1",
	Title:       "Tea",
	Ingredients: []string{"water", "tea leaves"},
	Steps:       []string{"boil", "steep", "serve"},
}

func TestCard(t *testing.T) {
	want := "Tea\nIngredients: water, tea leaves\nSteps: boil, steep, serve"
	if got := Card(tea); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCardKeepsEmptySegments(t *testing.T) {
	got := Card(domain.Recipe{Title: "Soup", Ingredients: []string{"salt", ""}, Steps: []string{"cook"}})
	want := "Soup\nIngredients: salt, \nSteps: cook"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestListOrderAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(no recipes)\n" {
		t.Fatalf("unexpected empty output %q", buf.String())
	}

	buf.Reset()
	bread := domain.Recipe{ID: "b", Title: "Bread", Ingredients: []string{"flour"}, Steps: []string{"bake"}}
	if err := List(&buf, []domain.Recipe{tea, bread}); err != nil {
		t.Fatal(err)
	}
	want := Card(tea) + "\n\n" + Card(bread) + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteJSONUsesBackendFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []domain.Recipe{tea}, "json"); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded[0]["_id"] != "a1" {
		t.Fatalf("expected _id field, got %v", decoded[0])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, nil, "xml"); err == nil {
		t.Fatalf("expected error")
	}
}

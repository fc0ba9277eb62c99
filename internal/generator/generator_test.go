package generator

import (
	"context"
	"testing"
)

func TestPromptShape(t *testing.T) {
	got := Prompt("What is the rate?", []string{"Rate is 5 percent.", "Earnings rose."})
	want := "Context: Rate is 5 percent. Earnings rose. \n\nQuestion: What is the rate?"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractiveTakesNearestSentences(t *testing.T) {
	g := NewExtractive(2)
	got, err := g.Generate(context.Background(), "q", []string{"first", "second", "third"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "first second" {
		t.Fatalf("got %q, want %q", got, "first second")
	}
}

func TestExtractiveShortContext(t *testing.T) {
	g := NewExtractive(5)
	got, err := g.Generate(context.Background(), "q", []string{"only"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "only" {
		t.Fatalf("got %q, want %q", got, "only")
	}
}

func TestExtractiveEmptyContext(t *testing.T) {
	if _, err := NewExtractive(2).Generate(context.Background(), "q", nil); err == nil {
		t.Fatal("want error for empty context")
	}
}

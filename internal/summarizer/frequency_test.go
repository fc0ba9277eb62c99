package summarizer

import (
	"strings"
	"testing"
)

func TestSummarizePicksFrequentTopics(t *testing.T) {
	sentences := []string{
		"Unemployment fell in March.",
		"Unemployment and earnings data come from the household survey.",
		"Weather was mild.",
	}
	s := NewFrequencySummarizer()
	got := s.Summarize(sentences, 1)
	if !strings.Contains(got, "Unemployment") {
		t.Fatalf("summary %q misses the dominant topic", got)
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	sentences := []string{
		"Unemployment rose.",
		"Unrelated filler line.",
		"Unemployment fell again later.",
	}
	s := NewFrequencySummarizer()
	got := s.Summarize(sentences, 2)
	first := strings.Index(got, "rose")
	second := strings.Index(got, "fell")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("summary %q does not preserve document order", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := NewFrequencySummarizer().Summarize(nil, 3); got != "" {
		t.Fatalf("got %q, want empty summary", got)
	}
}

func TestSummarizeClampsMax(t *testing.T) {
	got := NewFrequencySummarizer().Summarize([]string{"Only one line."}, 5)
	if got != "Only one line." {
		t.Fatalf("got %q", got)
	}
}

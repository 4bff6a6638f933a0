package indexer

import (
	"strings"
	"testing"
)

func TestChunkTextShortInput(t *testing.T) {
	chunks := ChunkText("just a few words")
	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
	if chunks[0] != "just a few words" {
		t.Fatalf("unexpected chunk %q", chunks[0])
	}
}

func TestChunkTextEmpty(t *testing.T) {
	if chunks := ChunkText("   "); chunks != nil {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}

func TestChunkTextOverlap(t *testing.T) {
	words := make([]string, 1200)
	for i := range words {
		words[i] = "w" + strings.Repeat("x", i%3)
	}
	chunks := ChunkText(strings.Join(words, " "))

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if got := len(strings.Fields(chunks[0])); got != 500 {
		t.Fatalf("expected 500 words in first chunk, got %d", got)
	}

	// Last 50 words of chunk N are the first 50 words of chunk N+1.
	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	if strings.Join(first[450:], " ") != strings.Join(second[:50], " ") {
		t.Fatal("expected 50 words of overlap between consecutive chunks")
	}
}

func TestExtractTextSkipsScript(t *testing.T) {
	page := `<html><head><title>t</title><script>var x = 1;</script></head>` +
		`<body><p>Hello <b>world</b></p><style>p{}</style></body></html>`

	text, err := ExtractText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "Hello world" {
		t.Fatalf("unexpected text %q", text)
	}
}

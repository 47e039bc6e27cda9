package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"diapo/internal/domain"
)

func testDeck() *domain.Deck {
	return &domain.Deck{
		Meta: domain.Meta{Title: "Demo", Author: "Ada"},
		Slides: []*domain.Slide{
			{Title: "Intro", Content: "# Intro\n\nhello"},
			{Content: "no heading here"},
		},
	}
}

func request(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("tool result content is %T, expected TextContent", res.Content[0])
	}
	return text.Text
}

func TestOutlineHandler(t *testing.T) {
	res, err := outlineHandler(testDeck())(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("outline error: %v", err)
	}

	out := textOf(t, res)
	if !strings.Contains(out, "1. Intro") {
		t.Errorf("outline missing titled slide:\n%s", out)
	}
	if !strings.Contains(out, "2. (untitled)") {
		t.Errorf("outline missing untitled placeholder:\n%s", out)
	}
}

func TestSlideHandler(t *testing.T) {
	deck := testDeck()
	handler := slideHandler(deck)

	res, err := handler(context.Background(), request(map[string]interface{}{"number": 1}))
	if err != nil {
		t.Fatalf("slide error: %v", err)
	}
	if got := textOf(t, res); got != deck.Slides[0].Content {
		t.Errorf("slide 1 content = %q", got)
	}

	for _, n := range []int{0, 3, -1} {
		res, err := handler(context.Background(), request(map[string]interface{}{"number": n}))
		if err != nil {
			t.Fatalf("slide(%d) transport error: %v", n, err)
		}
		if !res.IsError {
			t.Errorf("slide(%d) succeeded, expected a tool error", n)
		}
	}
}

func TestMetaHandler(t *testing.T) {
	res, err := metaHandler(testDeck())(context.Background(), request(nil))
	if err != nil {
		t.Fatalf("meta error: %v", err)
	}

	out := textOf(t, res)
	for _, want := range []string{"Title: Demo", "Author: Ada", "Slides: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("meta output missing %q:\n%s", want, out)
		}
	}
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diapo/internal/domain"
)

// RegisterDeckTools adds the read-only deck inspection tools to the MCP
// server. The tool surface is a querying API: unlike the navigation
// surface, out-of-range input here is answered with a tool error rather
// than a silent no-op.
func RegisterDeckTools(s *server.MCPServer, deck *domain.Deck) {
	s.AddTool(outlineTool(), outlineHandler(deck))
	s.AddTool(slideTool(), slideHandler(deck))
	s.AddTool(metaTool(), metaHandler(deck))
}

// --- outline ---

func outlineTool() mcp.Tool {
	return mcp.NewTool("outline",
		mcp.WithDescription("List the deck outline: slide numbers and titles."),
	)
}

func outlineHandler(deck *domain.Deck) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if deck.Len() == 0 {
			return mcp.NewToolResultText("The deck is empty."), nil
		}
		var sb strings.Builder
		for i, s := range deck.Slides {
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(&sb, "%d. %s\n", i+1, title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- slide ---

func slideTool() mcp.Tool {
	return mcp.NewTool("slide",
		mcp.WithDescription("Read the markdown source of one slide."),
		mcp.WithNumber("number",
			mcp.Description("1-based slide number"),
			mcp.Required(),
		),
	)
}

func slideHandler(deck *domain.Deck) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n := req.GetInt("number", 0)
		slide := deck.Slide(n)
		if slide == nil {
			return toolError(fmt.Errorf("slide %d out of range 1..%d", n, deck.Len()))
		}
		return mcp.NewToolResultText(slide.Content), nil
	}
}

// --- meta ---

func metaTool() mcp.Tool {
	return mcp.NewTool("meta",
		mcp.WithDescription("Show deck metadata and slide count."),
	)
}

func metaHandler(deck *domain.Deck) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		if deck.Meta.Title != "" {
			fmt.Fprintf(&sb, "Title: %s\n", deck.Meta.Title)
		}
		if deck.Meta.Author != "" {
			fmt.Fprintf(&sb, "Author: %s\n", deck.Meta.Author)
		}
		if deck.Meta.Date != "" {
			fmt.Fprintf(&sb, "Date: %s\n", deck.Meta.Date)
		}
		if deck.Meta.Theme != "" {
			fmt.Fprintf(&sb, "Theme: %s\n", deck.Meta.Theme)
		}
		fmt.Fprintf(&sb, "Slides: %d\n", deck.Len())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

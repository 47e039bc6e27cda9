package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diapo/internal/adapters/deckfile"
	mcpadapter "diapo/internal/adapters/mcp"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: diapo-mcp <deck.md>")
	}

	deck, err := deckfile.NewSource().Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("diapo-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"diapo-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterDeckTools(mcpServer, deck)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("diapo-mcp: %v", err)
	}
}

package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleAskAssistant runs one dialogue turn and returns the answer plus the
// follow-up questions for the resulting context.
func (s *Server) handleAskAssistant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	result := s.engine.Process(message)

	var sb strings.Builder
	sb.WriteString(result.Response)
	sb.WriteString("\n\nVervolgvragen:\n")
	for _, suggestion := range s.engine.Suggest(result.ContextHint) {
		sb.WriteString("• " + suggestion + "\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSuggestions returns the suggestion chips for a context hint.
func (s *Server) handleGetSuggestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hint := request.GetString("context", "")

	var suggestions []string
	if hint == "" {
		suggestions = s.engine.InitialSuggestions()
	} else {
		suggestions = s.engine.Suggest(hint)
	}

	var sb strings.Builder
	for _, suggestion := range suggestions {
		sb.WriteString("• " + suggestion + "\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSchedule lists the programme entries matching the query.
func (s *Server) handleGetSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")

	items := s.engine.KnowledgeBase().Schedule
	if query != "" {
		result := s.engine.SearchSchedule(query)
		if len(result.Items) == 0 {
			return mcp.NewToolResultText("Geen programma-onderdelen gevonden voor deze zoekopdracht."), nil
		}
		items = result.Items
	}

	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("• " + item.Time + ": " + item.EventDescription)
		if item.Details != "" {
			sb.WriteString(" (" + item.Details + ")")
		}
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

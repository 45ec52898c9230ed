package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askAssistantTool defines the ask_assistant MCP tool.
var askAssistantTool = mcp.NewTool("ask_assistant",
	mcp.WithDescription("Ask the De Koninklijke Loop assistant a question in Dutch. Answers cover the event, registration, routes, support and the day programme."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The question, in Dutch"),
	),
)

// getSuggestionsTool defines the get_suggestions MCP tool.
var getSuggestionsTool = mcp.NewTool("get_suggestions",
	mcp.WithDescription("Get follow-up questions for a context hint returned by a previous ask_assistant call."),
	mcp.WithString("context",
		mcp.Description("Context hint from a previous answer; empty returns the initial suggestions"),
	),
)

// getScheduleTool defines the get_schedule MCP tool.
var getScheduleTool = mcp.NewTool("get_schedule",
	mcp.WithDescription("Get the event-day programme, optionally filtered by a free-text query such as 'starttijd 10km'."),
	mcp.WithString("query",
		mcp.Description("Free-text filter; empty returns the full programme"),
	),
)

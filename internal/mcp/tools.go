package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listAnimationsTool defines the list_animations MCP tool.
var listAnimationsTool = mcp.NewTool("list_animations",
	mcp.WithDescription("List every React Native animation recipe in the catalog with its id, name, tags and description."),
)

// searchAnimationsTool defines the search_animations MCP tool.
var searchAnimationsTool = mcp.NewTool("search_animations",
	mcp.WithDescription("Find animation recipes whose name or a tag contains the term, ignoring case. The term is matched literally, including spaces."),
	mcp.WithString("term",
		mcp.Required(),
		mcp.Description("Substring to look for in names and tags. An empty term matches everything."),
	),
)

// getAnimationTool defines the get_animation MCP tool.
var getAnimationTool = mcp.NewTool("get_animation",
	mcp.WithDescription("Get the full description of one animation recipe: use cases, performance tips, tags and download file names."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Recipe id, e.g. progress-bar"),
	),
)

// getSourceTool defines the get_source MCP tool.
var getSourceTool = mcp.NewTool("get_source",
	mcp.WithDescription("Get the complete component source of a recipe in TypeScript (.tsx) or JavaScript (.jsx)."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Recipe id, e.g. flip-card"),
	),
	mcp.WithString("language",
		mcp.Description("Source language (default typescript)"),
		mcp.Enum("typescript", "javascript"),
	),
)

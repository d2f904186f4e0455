package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// handleListAnimations lists the whole catalog in display order.
func (s *Server) handleListAnimations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatRecipeList(s.catalog.All())), nil
}

// handleSearchAnimations filters the catalog by name and tag.
func (s *Server) handleSearchAnimations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("term")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: term"), nil
	}

	results := catalog.FilterByTerm(s.catalog, term)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No animations match %q.", term)), nil
	}
	return mcp.NewToolResultText(formatRecipeList(results)), nil
}

// handleGetAnimation describes one recipe.
func (s *Server) handleGetAnimation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	r, ok := catalog.FindByID(s.catalog, id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No animation with id %q. Use list_animations to see the catalog.", id)), nil
	}
	return mcp.NewToolResultText(formatRecipe(r)), nil
}

// handleGetSource returns one language's source and logs the export.
func (s *Server) handleGetSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	lang, err := catalog.ParseLanguage(request.GetString("language", string(catalog.DefaultLanguage)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, ok := catalog.FindByID(s.catalog, id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No animation with id %q. Use list_animations to see the catalog.", id)), nil
	}

	var source string
	fileName, err := export.ExportToFile(r, lang, export.SaverFunc(func(_, content, _ string) error {
		source = content
		return nil
	}))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("exporting source: %v", err)), nil
	}

	// A failed log write does not fail the tool call.
	_ = s.recorder.Record(ctx, activity.Event{
		Kind:     activity.KindExport,
		RecipeID: r.ID,
		Language: string(lang),
		FileName: fileName,
		Origin:   activity.OriginMCP,
	})

	return mcp.NewToolResultText(fmt.Sprintf("// %s\n%s", fileName, source)), nil
}

// formatRecipeList renders a compact listing for agent consumption.
func formatRecipeList(recipes []catalog.Recipe) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d animation(s):\n", len(recipes)))
	for _, r := range recipes {
		sb.WriteString(fmt.Sprintf("\n- %s: %s", r.ID, r.Name))
		if len(r.Tags) > 0 {
			sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(r.Tags, ", ")))
		}
		sb.WriteString("\n")
		if r.Description != "" {
			sb.WriteString("  " + r.Description + "\n")
		}
	}
	return sb.String()
}

// formatRecipe renders every field of r except the sources.
func formatRecipe(r catalog.Recipe) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", r.Name))
	sb.WriteString(fmt.Sprintf("ID: %s\n", r.ID))
	sb.WriteString(fmt.Sprintf("Page: %s\n", view.DetailPath(r.ID)))
	if len(r.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(r.Tags, ", ")))
	}
	if r.Description != "" {
		sb.WriteString("\n" + r.Description + "\n")
	}

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n", title))
		for _, item := range items {
			sb.WriteString("- " + item + "\n")
		}
	}
	writeList("Use cases", r.UseCases)
	writeList("Performance tips", r.PerformanceTips)

	sb.WriteString("\n## Files\n")
	for _, lang := range catalog.Languages() {
		if name, err := export.SuggestFileName(r, lang); err == nil {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", lang.Label(), name))
		}
	}
	return sb.String()
}

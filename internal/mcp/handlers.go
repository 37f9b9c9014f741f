package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Kitware/vtk-mcp/internal/config"
	"github.com/Kitware/vtk-mcp/internal/errors"
	"github.com/Kitware/vtk-mcp/internal/format"
	"github.com/Kitware/vtk-mcp/internal/scraper"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	scraper *scraper.Scraper
	cfg     *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(scr *scraper.Scraper, cfg *config.Config) *Handlers {
	return &Handlers{scraper: scr, cfg: cfg}
}

// Request types for each tool

// ClassInfoRequest represents the arguments for get_vtk_class_info.
type ClassInfoRequest struct {
	ClassName string `json:"class_name"`
}

// SearchRequest represents the arguments for search_vtk_classes.
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// HandleClassInfo handles the get_vtk_class_info tool call.
// The result is the class record rendered as markdown.
func (h *Handlers) HandleClassInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ClassInfoRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	rec, err := h.scraper.Lookup(ctx, input.ClassName)
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(format.ClassMarkdown(rec)), nil
}

// HandleSearch handles the search_vtk_classes tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	matches, err := h.scraper.Search(ctx, input.SearchTerm)
	if err != nil {
		return errorResult(err), nil
	}

	return mcp.NewToolResultText(format.SearchMarkdown(input.SearchTerm, matches)), nil
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var vErr *errors.Error
	if stderrors.As(err, &vErr) {
		errorObj := map[string]any{
			"code":    vErr.Code,
			"message": vErr.Message,
			"status":  vErr.Status,
		}
		if vErr.Code != errors.ErrInternal && vErr.Details != nil {
			errorObj["details"] = vErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

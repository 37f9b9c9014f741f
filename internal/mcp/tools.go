package mcp

import "github.com/mark3labs/mcp-go/mcp"

// classInfoToolDef describes the class lookup tool. The vtk prefix is
// optional in the argument; the scraper normalizes it.
var classInfoToolDef = mcp.NewTool("get_vtk_class_info",
	mcp.WithDescription("Get detailed information about a VTK class from the online documentation."),
	mcp.WithString("class_name",
		mcp.Required(),
		mcp.Description("VTK class name to retrieve (the vtk prefix is optional, e.g. Actor or vtkActor)"),
	),
)

// searchToolDef describes the class search tool.
var searchToolDef = mcp.NewTool("search_vtk_classes",
	mcp.WithDescription("Search for VTK classes containing a specific term."),
	mcp.WithString("search_term",
		mcp.Required(),
		mcp.Description("Substring to match against class names, case-insensitive"),
	),
)

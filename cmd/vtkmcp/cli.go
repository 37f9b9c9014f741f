package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/Kitware/vtk-mcp/internal/config"
	"github.com/Kitware/vtk-mcp/internal/errors"
	"github.com/Kitware/vtk-mcp/internal/format"
	mcpserver "github.com/Kitware/vtk-mcp/internal/mcp"
	"github.com/Kitware/vtk-mcp/internal/scraper"
	"github.com/Kitware/vtk-mcp/internal/web"
)

// toolEnvelope is the JSON output shape for info/search, mirroring the
// MCP tool call that the command corresponds to.
type toolEnvelope struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Result    any            `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(scr *scraper.Scraper, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "vtkmcp",
		Usage:   "VTK documentation lookup over MCP",
		Version: Version,
		Commands: []*cli.Command{
			infoCmd(scr),
			searchCmd(scr),
			toolsCmd(),
			serveCmd(scr, cfg),
			webCmd(scr, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// infoCmd creates the info command.
func infoCmd(scr *scraper.Scraper) *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show documentation for a VTK class",
		ArgsUsage: "<class>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("class name is required"))
			}
			className := c.Args().First()

			if !c.Bool("json") {
				fmt.Printf("Retrieving documentation for '%s'...\n", className)
			}

			rec, err := scr.Lookup(context.Background(), className)
			if err != nil {
				if c.Bool("json") {
					return outputJSON(toolEnvelope{
						Tool:      "get_vtk_class_info",
						Arguments: map[string]any{"class_name": className},
						Error:     err.Error(),
					})
				}
				if errors.Is(err, errors.ErrNotFound) {
					fmt.Printf("Class '%s' not found in VTK documentation\n", className)
					return nil
				}
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(toolEnvelope{
					Tool:      "get_vtk_class_info",
					Arguments: map[string]any{"class_name": className},
					Result:    rec,
				})
			}

			fmt.Println(format.ClassText(rec))
			return nil
		},
	}
}

// searchCmd creates the search command.
func searchCmd(scr *scraper.Scraper) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search VTK class names by substring",
		ArgsUsage: "<term>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("search term is required"))
			}
			term := c.Args().First()

			matches, err := scr.Search(context.Background(), term)
			if err != nil {
				if c.Bool("json") {
					return outputJSON(toolEnvelope{
						Tool:      "search_vtk_classes",
						Arguments: map[string]any{"search_term": term},
						Error:     err.Error(),
					})
				}
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(toolEnvelope{
					Tool:      "search_vtk_classes",
					Arguments: map[string]any{"search_term": term},
					Result:    matches,
				})
			}

			fmt.Println(format.SearchText(term, matches))
			return nil
		},
	}
}

// toolsCmd creates the tools command, listing the MCP tools this binary serves.
func toolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List available MCP tools",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: func(c *cli.Context) error {
			defs := mcpserver.Tools()
			sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

			if c.Bool("json") {
				return outputJSON(map[string]any{"available_tools": defs})
			}

			fmt.Printf("Available MCP tools (%d):\n\n", len(defs))
			for _, def := range defs {
				fmt.Printf("  %s\n", def.Name)
				if def.Description != "" {
					fmt.Printf("    %s\n", def.Description)
				}
				params := make([]string, 0, len(def.InputSchema.Properties))
				for name := range def.InputSchema.Properties {
					params = append(params, name)
				}
				sort.Strings(params)
				for _, p := range params {
					fmt.Printf("    - %s\n", p)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(scr *scraper.Scraper, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "transport", Aliases: []string{"t"}, Value: "stdio", Usage: "Transport: stdio|http"},
			&cli.StringFlag{Name: "host", Value: "127.0.0.1", Usage: "Host to bind (http transport)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8000, Usage: "Port to bind (http transport)"},
		},
		Action: func(c *cli.Context) error {
			switch c.String("transport") {
			case "stdio":
				return mcpserver.Run(scr, cfg, Version)
			case "http":
				host := c.String("host")
				port := c.Int("port")
				fmt.Fprintf(os.Stderr, "Starting VTK MCP Server on http://%s:%d\n", host, port)
				return mcpserver.RunHTTP(scr, cfg, Version, host, port)
			default:
				return outputError(errors.NewInvalidRequest(
					fmt.Sprintf("unknown transport: %s (expected stdio or http)", c.String("transport"))))
			}
		},
	}
}

// webCmd creates the web command.
func webCmd(scr *scraper.Scraper, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Run the documentation web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Port to bind"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(scr, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if vErr, ok := err.(*errors.Error); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", vErr.Code, vErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

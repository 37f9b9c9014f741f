// Package format renders class records and search results for the MCP
// tool surface (markdown) and the terminal (plain text).
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Kitware/vtk-mcp/internal/scraper"
)

// Rendering limits. Full method lists on central VTK classes run to
// dozens of entries; both surfaces show a head and a "... and N more" line.
const (
	markdownMethodLimit = 10
	textDescriptionMax  = 400
	textInheritanceMax  = 8
	textMethodLimit     = 12
)

// ClassMarkdown renders a class record as a markdown document.
func ClassMarkdown(rec *scraper.ClassRecord) string {
	lines := []string{"# " + rec.ClassName, ""}

	if rec.Brief != "" {
		lines = append(lines, "## Brief Description", rec.Brief, "")
	}
	if rec.DetailedDescription != "" {
		lines = append(lines, "## Detailed Description", rec.DetailedDescription, "")
	}

	if len(rec.Inheritance) > 0 {
		lines = append(lines, "## Inheritance Hierarchy")
		for _, parent := range rec.Inheritance {
			lines = append(lines, "- "+parent)
		}
		lines = append(lines, "")
	}

	if len(rec.Methods) > 0 {
		lines = append(lines, "## Public Methods")
		shown := rec.Methods
		if len(shown) > markdownMethodLimit {
			shown = shown[:markdownMethodLimit]
		}
		for _, m := range shown {
			description := m.Description
			if description == "" {
				description = "No description"
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %s", m.Name, description))
		}
		if remaining := len(rec.Methods) - markdownMethodLimit; remaining > 0 {
			lines = append(lines, fmt.Sprintf("- ... and %d more methods", remaining))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## Documentation URL", rec.URL)
	return strings.Join(lines, "\n")
}

// ClassText renders a class record for the terminal.
func ClassText(rec *scraper.ClassRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "VTK Class: %s\n", rec.ClassName)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if rec.Brief != "" {
		fmt.Fprintf(&b, "Brief: %s\n\n", rec.Brief)
	}

	if rec.DetailedDescription != "" {
		description := rec.DetailedDescription
		if utf8.RuneCountInString(description) > textDescriptionMax {
			description = string([]rune(description)[:textDescriptionMax]) + "..."
		}
		fmt.Fprintf(&b, "Description: %s\n\n", description)
	}

	if len(rec.Inheritance) > 0 {
		fmt.Fprintf(&b, "Inheritance hierarchy (%d parent classes):\n", len(rec.Inheritance))
		shown := rec.Inheritance
		if len(shown) > textInheritanceMax {
			shown = shown[:textInheritanceMax]
		}
		for _, parent := range shown {
			fmt.Fprintf(&b, "  └─ %s\n", parent)
		}
		if remaining := len(rec.Inheritance) - textInheritanceMax; remaining > 0 {
			fmt.Fprintf(&b, "  └─ ... and %d more parent classes\n", remaining)
		}
		b.WriteString("\n")
	}

	if len(rec.Methods) > 0 {
		fmt.Fprintf(&b, "Methods (%d available):\n", len(rec.Methods))
		shown := rec.Methods
		if len(shown) > textMethodLimit {
			shown = shown[:textMethodLimit]
		}
		for i, m := range shown {
			fmt.Fprintf(&b, "  %2d. %s\n", i+1, m.Name)
		}
		if remaining := len(rec.Methods) - textMethodLimit; remaining > 0 {
			fmt.Fprintf(&b, "      ... and %d more methods\n", remaining)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Documentation URL: %s", rec.URL)
	return b.String()
}

// SearchMarkdown renders search matches as the MCP tool response.
func SearchMarkdown(term string, matches []string) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No VTK classes found containing '%s'", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "VTK classes containing '%s':\n\n", term)
	for i, name := range matches {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	fmt.Fprintf(&b, "\nFound %d classes.", len(matches))
	return b.String()
}

// SearchText renders search matches for the terminal.
func SearchText(term string, matches []string) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No VTK classes found matching '%s'", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d VTK classes matching '%s':\n\n", len(matches), term)
	for i, name := range matches {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	b.WriteString("\nUse the info command with any class name for detailed information.")
	return b.String()
}

package scraper

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// classLinkRe matches hrefs that point at a class documentation page.
var classLinkRe = regexp.MustCompile(`class.*\.html`)

// Description blocks at or under this many characters are boilerplate
// fragments ("More...", "[legend]") rather than prose.
const minDescriptionChars = 20

// maxDescriptionBlocks bounds how many prose blocks are concatenated
// into the detailed description.
const maxDescriptionBlocks = 2

// parseClassPage extracts a ClassRecord from a fetched class page.
// Each field is extracted independently; a layout that defeats one
// extraction step does not abort the others.
func parseClassPage(doc *goquery.Document, className, url string) *ClassRecord {
	rec := &ClassRecord{
		ClassName:   className,
		Inheritance: []string{},
		Methods:     []MethodEntry{},
		URL:         url,
	}

	rec.Brief = strings.TrimSpace(doc.Find("div.title").First().Text())
	rec.DetailedDescription = extractDetailedDescription(doc)
	rec.Inheritance = extractInheritance(doc, className)
	rec.Methods = extractMethods(doc)

	return rec
}

// extractDetailedDescription joins the first two substantial textblock
// divs. Short blocks are skipped as noise.
func extractDetailedDescription(doc *goquery.Document) string {
	var blocks []string
	doc.Find("div.textblock").Each(func(_ int, sel *goquery.Selection) {
		if len(blocks) >= maxDescriptionBlocks {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) > minDescriptionChars {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, " ")
}

// extractInheritance collects related class names from same-page links.
// Doxygen does not mark the hierarchy up distinctly, so any class-page
// link with a vtk-prefixed label counts, excluding the page's own class.
// First-seen order is preserved and the list is capped at MaxInheritance.
func extractInheritance(doc *goquery.Document, className string) []string {
	seen := make(map[string]bool)
	chain := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		if len(chain) >= MaxInheritance {
			return
		}
		href, _ := link.Attr("href")
		if !classLinkRe.MatchString(href) {
			return
		}
		name := strings.TrimSpace(link.Text())
		if !strings.HasPrefix(name, ClassPrefix) || name == className || seen[name] {
			return
		}
		seen[name] = true
		chain = append(chain, name)
	})

	return chain
}

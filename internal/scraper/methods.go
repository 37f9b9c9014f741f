package scraper

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	// memberHeadingRe matches the section headings Doxygen emits above
	// member function listings.
	memberHeadingRe = regexp.MustCompile(`(?i)Member Function|Public.*Function`)

	// hexAnchorRe matches Doxygen's internal member anchors (#a1b2c3...).
	hexAnchorRe = regexp.MustCompile(`#a[0-9a-f]+`)
)

// maxContextChars bounds the surrounding-context description produced by
// the anchor strategy.
const maxContextChars = 200

// methodStrategy extracts a (possibly empty) method list from one page
// layout. Strategies are independent and side-effect free.
type methodStrategy func(*goquery.Document) []MethodEntry

// methodStrategies are tried in order; the first strategy yielding at
// least one method wins. The order matters: the table strategy produces
// full signatures, the heading strategy placeholder names, and the
// anchor strategy is a last resort that accepts almost any member link.
var methodStrategies = []methodStrategy{
	tableMethods,
	headingMethods,
	anchorMethods,
}

// extractMethods runs the strategy chain, then deduplicates by name
// (first occurrence wins, order preserved) and caps at MaxMethods.
func extractMethods(doc *goquery.Document) []MethodEntry {
	var methods []MethodEntry
	for _, strategy := range methodStrategies {
		if methods = strategy(doc); len(methods) > 0 {
			break
		}
	}

	seen := make(map[string]bool, len(methods))
	unique := make([]MethodEntry, 0, len(methods))
	for _, m := range methods {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		unique = append(unique, m)
		if len(unique) == MaxMethods {
			break
		}
	}
	return unique
}

// tableMethods reads Doxygen member declaration tables. The right-hand
// cell of each row carries the linked method name and its signature.
func tableMethods(doc *goquery.Document) []MethodEntry {
	var methods []MethodEntry
	doc.Find("table.memberdecls tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td.memItemRight").First()
		if cell.Length() == 0 {
			return
		}
		link := cell.Find("a").First()
		if link.Length() == 0 {
			return
		}
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		methods = append(methods, MethodEntry{
			Name:        name,
			Description: strings.TrimSpace(cell.Text()),
		})
	})
	return methods
}

// headingMethods walks the siblings of "Member Function" section headings
// up to the next heading, collecting anchored links out of any tables in
// that span. Link text naming a class, struct, or enum is skipped.
func headingMethods(doc *goquery.Document) []MethodEntry {
	var methods []MethodEntry
	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		if !memberHeadingRe.MatchString(heading.Text()) {
			return
		}
		heading.NextUntil("h1, h2, h3").Filter("table").Each(func(_ int, table *goquery.Selection) {
			table.Find("tr").Each(func(_ int, row *goquery.Selection) {
				row.Find(`a[href*='#']`).Each(func(_ int, link *goquery.Selection) {
					name := strings.TrimSpace(link.Text())
					if name == "" || containsAnyFold(name, "class", "struct", "enum") {
						return
					}
					methods = append(methods, MethodEntry{
						Name:        name,
						Description: "Method: " + name,
					})
				})
			})
		})
	})
	return methods
}

// anchorMethods is the fallback of last resort: any link targeting an
// internal hex anchor is treated as a method reference, described by the
// text of its nearest enclosing cell or container.
func anchorMethods(doc *goquery.Document) []MethodEntry {
	var methods []MethodEntry
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !hexAnchorRe.MatchString(href) {
			return
		}
		name := strings.TrimSpace(link.Text())
		if utf8.RuneCountInString(name) <= 2 {
			return
		}
		if containsAnyFold(name, "class", "struct", "enum", "typedef") {
			return
		}

		description := name
		if parent := link.Closest("td, div, span"); parent.Length() > 0 {
			if context := strings.TrimSpace(parent.Text()); context != "" {
				description = truncateRunes(context, maxContextChars)
			}
		}
		methods = append(methods, MethodEntry{
			Name:        name,
			Description: description,
		})
	})
	return methods
}

// containsAnyFold reports whether s contains any of the given substrings,
// case-insensitively.
func containsAnyFold(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

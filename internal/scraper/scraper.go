// Package scraper extracts VTK class documentation from the public
// Doxygen site. Pages come in several layouts; extraction is best-effort
// and field-independent, so a page that yields no methods can still yield
// a description and vice versa.
package scraper

import (
	"context"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Kitware/vtk-mcp/internal/errors"
)

// ClassPrefix is the prefix every documented VTK class name carries.
const ClassPrefix = "vtk"

// DefaultBaseURL is the root of the nightly Doxygen documentation.
const DefaultBaseURL = "https://vtk.org/doc/nightly/html"

// Extraction caps. Doxygen pages for central classes link to hundreds of
// related classes and methods; callers only ever want the head of each list.
const (
	MaxInheritance   = 10
	MaxMethods       = 50
	MaxSearchResults = 20
)

// MethodEntry is a named method with a best-effort description. Depending
// on which extraction strategy matched, the description is a full
// signature, a synthesized "Method: X" placeholder, or truncated
// surrounding context.
type MethodEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ClassRecord is the structured result of a successful lookup.
type ClassRecord struct {
	ClassName           string        `json:"class_name"`
	Brief               string        `json:"brief"`
	DetailedDescription string        `json:"detailed_description"`
	Inheritance         []string      `json:"inheritance"`
	Methods             []MethodEntry `json:"methods"`
	URL                 string        `json:"url"`
}

// Scraper fetches and parses VTK documentation pages. It holds no
// per-call state and is safe for concurrent use as long as its Fetcher is.
type Scraper struct {
	fetcher Fetcher
	baseURL string
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL overrides the documentation root URL.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		if u != "" {
			s.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

// New creates a Scraper backed by the given Fetcher.
func New(fetcher Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Normalize returns the canonical class name for an identifier,
// prepending the vtk prefix when missing ("Actor" → "vtkActor").
func Normalize(identifier string) string {
	name := strings.TrimSpace(identifier)
	if !strings.HasPrefix(name, ClassPrefix) {
		name = ClassPrefix + name
	}
	return name
}

// ClassURL returns the documentation page URL for a normalized class name.
func (s *Scraper) ClassURL(className string) string {
	return s.baseURL + "/class" + className + ".html"
}

// IndexURL returns the URL of the annotated class listing used by Search.
func (s *Scraper) IndexURL() string {
	return s.baseURL + "/annotated.html"
}

// Lookup fetches and parses the documentation page for the given class
// identifier. An empty identifier fails with INVALID_REQUEST before any
// fetch. Any fetch failure (network error, timeout, non-2xx status)
// surfaces as NOT_FOUND; the site gives no way to tell a missing class
// from a transient failure, so the two are deliberately conflated.
// A page that fetched but yielded nothing still returns a record with
// empty fields.
func (s *Scraper) Lookup(ctx context.Context, identifier string) (*ClassRecord, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, errors.NewInvalidRequest("class_name is required")
	}

	className := Normalize(identifier)
	url := s.ClassURL(className)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, errors.NewNotFound(className)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.NewNotFound(className)
	}

	return parseClassPage(doc, className, url), nil
}

// Search fetches the annotated class index and returns the names of
// classes containing term as a case-insensitive substring, deduplicated,
// sorted ascending, capped at MaxSearchResults. An empty term fails with
// INVALID_REQUEST before any fetch; a fetch failure yields an empty
// result, not an error.
func (s *Scraper) Search(ctx context.Context, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, errors.NewInvalidRequest("search_term is required")
	}

	body, err := s.fetcher.Fetch(ctx, s.IndexURL())
	if err != nil {
		return []string{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return []string{}, nil
	}

	needle := strings.ToLower(term)
	seen := make(map[string]bool)
	matches := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !classLinkRe.MatchString(href) {
			return
		}
		name := strings.TrimSpace(link.Text())
		if name == "" || seen[name] {
			return
		}
		if strings.Contains(strings.ToLower(name), needle) {
			seen[name] = true
			matches = append(matches, name)
		}
	})

	sort.Strings(matches)
	if len(matches) > MaxSearchResults {
		matches = matches[:MaxSearchResults]
	}
	return matches, nil
}

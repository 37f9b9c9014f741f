package web

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kitware/vtk-mcp/internal/config"
	"github.com/Kitware/vtk-mcp/internal/scraper"
)

const testClassPage = `<html><body>
<div class="title">vtkActor Class Reference</div>
<div class="textblock">represents an object in a rendered scene with geometry and properties</div>
<a href="classvtkProp3D.html">vtkProp3D</a>
<table class="memberdecls">
<tr><td class="memItemRight"><a href="#a1b2c3">GetProperty</a> ()</td></tr>
</table>
</body></html>`

const testIndexPage = `<html><body>
<a href="classvtkActor.html">vtkActor</a>
<a href="classvtkActorCollection.html">vtkActorCollection</a>
<a href="classvtkCamera.html">vtkCamera</a>
</body></html>`

type stubFetcher struct {
	pages map[string]string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	for suffix, body := range f.pages {
		if strings.HasSuffix(url, suffix) {
			return body, nil
		}
	}
	return "", fmt.Errorf("HTTP 404 for %s", url)
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	fetcher := &stubFetcher{pages: map[string]string{
		"/classvtkActor.html": testClassPage,
		"/annotated.html":     testIndexPage,
	}}
	scr := scraper.New(fetcher)
	srv := NewServer(scr, config.DefaultConfig(), "test", "127.0.0.1", 0)
	return srv.Handler
}

func TestRootRedirectsToClasses(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/classes" {
		t.Errorf("Location = %q, want /classes", loc)
	}
}

func TestSearchPage_NoQuery(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `name="q"`) {
		t.Error("expected the search form")
	}
	if !strings.Contains(body, "Enter a term") {
		t.Error("expected the empty-state prompt")
	}
}

func TestSearchPage_WithQuery(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes?q=Actor", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"vtkActor", "vtkActorCollection", `/classes/vtkActor`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "vtkCamera") {
		t.Error("non-matching class should not be listed")
	}
}

func TestSearchPage_NoMatches(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes?q=Quaternion", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No VTK classes found") {
		t.Error("expected the no-matches message")
	}
}

func TestDetailPage(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes/vtkActor", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<h1>vtkActor</h1>",
		"Brief Description",
		"vtkProp3D",
		"GetProperty",
		"View on vtk.org",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDetailPage_UnknownClass(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes/vtkDoesNotExist", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error 404") {
		t.Error("expected the error page")
	}
}

func TestStaticAssets(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/static/style.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/classes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options header")
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options header")
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("missing Content-Security-Policy header")
	}
}

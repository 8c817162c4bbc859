package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"sync/atomic"
	"testing"
)

const listPage = `<html><body><table id="list">
<tr><td><a class="list-links__link" href="/study/course/1/.cs">IZP</a></td></tr>
<tr><td><a class="list-links__link" href="course/2/.cs">IDM</a></td></tr>
<tr><td><a class="other" href="/elsewhere">x</a></td></tr>
</table></body></html>`

func coursePage(code string) string {
	return fmt.Sprintf(`<html><body><h1 class="b-detail__title">Course %s</h1>
<span class="b-detail__annot-item font-bold" itemprop="courseCode">%s</span></body></html>`, code, code)
}

func newTestServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/study/courses/.cs", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Write([]byte(listPage))
	})
	mux.HandleFunc("/study/course/1/.cs", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Write([]byte(coursePage("IZP")))
	})
	mux.HandleFunc("/study/courses/course/2/.cs", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.Write([]byte(coursePage("IDM")))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchCourseLinks_Mock(t *testing.T) {
	var hits int64
	server := newTestServer(t, &hits)

	client, err := NewClient(server.URL+"/study/courses/", nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	links, err := client.FetchCourseLinks(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error fetching mocked course list: %v", err)
	}

	want := []string{
		server.URL + "/study/course/1/.cs",
		server.URL + "/study/courses/course/2/.cs",
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links mismatch.\nGot: %v\nExpected: %v", links, want)
	}
}

func TestClient_FetchAll_KeepsOrder(t *testing.T) {
	var hits int64
	server := newTestServer(t, &hits)

	client, err := NewClient(server.URL+"/study/courses/", nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	urls := []string{
		server.URL + "/study/courses/course/2/.cs",
		server.URL + "/study/course/1/.cs",
		server.URL + "/missing",
	}
	pages := client.FetchAll(context.Background(), urls, 3)
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}

	for i, want := range []string{"IDM", "IZP"} {
		if pages[i].Err != nil {
			t.Fatalf("page %d failed: %v", i, pages[i].Err)
		}
		if got, _ := pages[i].Doc.FieldText("span[itemprop=courseCode]"); got != want {
			t.Errorf("page %d: expected %s, got %s", i, want, got)
		}
	}
	if pages[2].Err == nil {
		t.Errorf("expected an error for the missing page")
	}
}

func TestClient_FetchAll_Cancelled(t *testing.T) {
	var hits int64
	server := newTestServer(t, &hits)

	client, err := NewClient(server.URL+"/study/courses/", nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := client.FetchAll(ctx, []string{server.URL + "/study/course/1/.cs"}, 1)
	if pages[0].Err == nil {
		t.Errorf("expected cancelled fetch to fail")
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Errorf("expected no requests after cancellation, got %d", hits)
	}
}

func TestClient_FetchPage_UsesCache(t *testing.T) {
	var hits int64
	server := newTestServer(t, &hits)

	cache, err := NewCache(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	client, err := NewClient(server.URL+"/study/courses/", cache, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		doc, err := client.FetchPage(context.Background(), "/study/course/1/.cs")
		if err != nil {
			t.Fatalf("FetchPage failed: %v", err)
		}
		if got, _ := doc.FieldText("h1.b-detail__title"); got != "Course IZP" {
			t.Errorf("unexpected title %q", got)
		}
	}
	if atomic.LoadInt64(&hits) != 1 {
		t.Errorf("expected 1 request with a warm cache, got %d", hits)
	}
}

func TestClient_Get_404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Get(context.Background(), "/nothing"); err == nil {
		t.Errorf("expected error for 404 status, got nil")
	}
}

// TestScraperIntegration_FetchCourseLinks actually connects to the faculty web server.
// If this test fails, the faculty changed their HTML structure or the server is down.
func TestScraperIntegration_FetchCourseLinks(t *testing.T) {
	if os.Getenv("SCHGEN_INTEGRATION") == "" {
		t.Skip("set SCHGEN_INTEGRATION=1 to run against the live catalogue")
	}

	client, err := NewClient("", nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	links, err := client.FetchCourseLinks(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to fetch the course list: %v", err)
	}
	if len(links) == 0 {
		t.Fatalf("Expected to find courses, but got 0")
	}
}

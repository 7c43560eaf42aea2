package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dotpro/tutorial-web/internal/handler"
)

func getPage(t *testing.T, srvURL, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(srvURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(t, resp)
}

func TestHandleHome(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>Welcome!</h1>") {
		t.Fatalf("expected welcome heading, got %s", body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected Content-Type %s", ct)
	}
}

func TestHandleHomeNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	w := httptest.NewRecorder()

	handler.NewPageHandler(fstest.MapFS{}).HandleHome(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Nothing lives at /nonexistent.") {
		t.Fatalf("expected inline explanation, got %s", w.Body.String())
	}
}

func TestHandleGreet(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/greet?name=Ryozo")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>Hello, Ryozo!</h1>") {
		t.Fatalf("expected greeting, got %s", body)
	}
	if !strings.Contains(body, `value="Ryozo"`) {
		t.Fatal("expected name bound into the form")
	}
}

func TestHandleGreetEscapesName(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	_, body := getPage(t, srv.URL, "/greet?name=%3Cscript%3E")
	if strings.Contains(body, "<script>") {
		t.Fatal("name must be HTML-escaped")
	}
	if !strings.Contains(body, "Hello, &lt;script&gt;!") {
		t.Fatalf("expected escaped greeting, got %s", body)
	}
}

func TestHandleGreetMissingName(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, _ := getPage(t, srv.URL, "/greet")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestHandleGreetEmptyNameRendersWelcome(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/greet?name=")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>Welcome!</h1>") {
		t.Fatalf("expected welcome heading, got %s", body)
	}
}

func TestHandleHello(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/hello")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>Hello, FastAPI!</h1>") {
		t.Fatalf("expected hello heading, got %s", body)
	}
}

func TestHandleConditional(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	_, body := getPage(t, srv.URL, "/conditional")
	if !strings.Contains(body, "<h1>Hello, Guest!</h1>") {
		t.Fatalf("expected guest greeting, got %s", body)
	}

	_, body = getPage(t, srv.URL, "/conditional?name=Aiko")
	if !strings.Contains(body, "<h1>Welcome back, Aiko!</h1>") {
		t.Fatalf("expected personal greeting, got %s", body)
	}
}

func TestHandlePlainStrings(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	tests := map[string]string{
		"/dot-pro": "Hello, dot-pro!",
		"/profile": "Hello, Ryozo!",
	}
	for path, want := range tests {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var got string
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		resp.Body.Close()
		if got != want {
			t.Fatalf("GET %s: expected %q, got %q", path, want, got)
		}
	}
}

func TestHandleIndex(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/index")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body != testIndexHTML {
		t.Fatalf("expected static file verbatim, got %q", body)
	}
}

func TestHandleIndexMissingFile(t *testing.T) {
	app, _ := newTestApp(t)
	app.Static = fstest.MapFS{}
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/index")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "index.html is not available") {
		t.Fatalf("expected inline explanation, got %s", body)
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	resp, body := getPage(t, srv.URL, "/no/such/page")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "<h1>404 Not found</h1>") {
		t.Fatalf("expected not-found page, got %s", body)
	}
}

func TestUnknownPathAnyMethodRendersNotFoundPage(t *testing.T) {
	app, _ := newTestApp(t)
	srv := newTestServer(t, app)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req, err := http.NewRequest(method, srv.URL+"/nope", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s /nope: %v", method, err)
		}
		body := readBody(t, resp)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s /nope: expected 404, got %d", method, resp.StatusCode)
		}
		if !strings.Contains(body, "Nothing lives at "+method+" /nope.") {
			t.Fatalf("%s /nope: expected explanation, got %s", method, body)
		}
	}
}

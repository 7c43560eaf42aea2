package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dotpro/tutorial-web/internal/handler"
	"github.com/dotpro/tutorial-web/internal/service"
	"github.com/google/uuid"
)

func TestRequestID_AssignsNewID(t *testing.T) {
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = handler.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.RequestID(inner).ServeHTTP(w, req)

	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("expected a UUID request id, got %q", gotID)
	}
	if w.Header().Get("X-Request-ID") != gotID {
		t.Fatalf("expected response header %q, got %q", gotID, w.Header().Get("X-Request-ID"))
	}
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
	incoming := uuid.NewString()
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = handler.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", incoming)
	w := httptest.NewRecorder()
	handler.RequestID(inner).ServeHTTP(w, req)

	if gotID != incoming {
		t.Fatalf("expected %q, got %q", incoming, gotID)
	}
}

func TestRequestID_ReplacesMalformedID(t *testing.T) {
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = handler.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "not a uuid\r\nInjected: 1")
	w := httptest.NewRecorder()
	handler.RequestID(inner).ServeHTTP(w, req)

	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("expected malformed id to be replaced, got %q", gotID)
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	if id := handler.RequestIDFromContext(context.Background()); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}
}

func TestRequestLogger_PassesStatusThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.RequestLogger(inner).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", w.Code)
	}
}

func TestRequestLogger_Flushes(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := w.(http.Flusher)
		if !ok {
			t.Fatal("expected the wrapped writer to support flushing")
		}
		w.Write([]byte("data: hello\n\n"))
		f.Flush()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.RequestLogger(inner).ServeHTTP(w, req)

	if !w.Flushed {
		t.Fatal("expected the underlying recorder to be flushed")
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "same-origin",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Fatalf("%s: expected %q, got %q", header, value, got)
		}
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Fatal("expected a Content-Security-Policy header")
	}
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := handler.RateLimit(nil, inner)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/users", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimit_RejectsWhenExhausted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	limiter := service.NewTokenBucket(ctx, 0, 1)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := handler.RateLimit(limiter, inner)

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("first request: expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// Another client has its own bucket.
	other := httptest.NewRequest(http.MethodPost, "/users", nil)
	other.RemoteAddr = "192.0.2.2:1234"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, other)
	if w.Code != http.StatusNoContent {
		t.Fatalf("other client: expected 204, got %d", w.Code)
	}
}

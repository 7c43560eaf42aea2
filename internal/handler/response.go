package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Response is the outcome of an HTML request: a rendered page, a redirect
// to a canonical URL, or a plain-text error.
type Response interface {
	write(w http.ResponseWriter, r *http.Request)
}

// Page renders a templ component. A zero Status means 200.
type Page struct {
	Status    int
	Component templ.Component
}

// Redirect sends the client to URL after a write. Browsers get a 303;
// datastar requests get the redirect as a server-sent event.
type Redirect struct {
	URL string
}

// Error is a plain-text error response.
type Error struct {
	Status  int
	Message string
}

func respond(w http.ResponseWriter, r *http.Request, resp Response) {
	resp.write(w, r)
}

func (p Page) write(w http.ResponseWriter, r *http.Request) {
	status := p.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.Component.Render(r.Context(), w); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
	}
}

func (rd Redirect) write(w http.ResponseWriter, r *http.Request) {
	if isDatastarRequest(r) {
		sse := datastar.NewSSE(w, r)
		if err := sse.Redirect(rd.URL); err != nil {
			slog.Error("send SSE redirect", "url", rd.URL, "error", err)
		}
		return
	}
	http.Redirect(w, r, rd.URL, http.StatusSeeOther)
}

func (e Error) write(w http.ResponseWriter, r *http.Request) {
	http.Error(w, e.Message, e.Status)
}

func isDatastarRequest(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}

var errInternal = Error{Status: http.StatusInternalServerError, Message: "Internal Server Error"}

package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/dotpro/tutorial-web/internal/view"
)

const indexFile = "index.html"

// PageHandler serves the greeting and template demo pages.
type PageHandler struct {
	static fs.FS
}

// NewPageHandler creates a new PageHandler reading raw HTML files from static.
func NewPageHandler(static fs.FS) *PageHandler {
	return &PageHandler{static: static}
}

// HandleHome renders the greeting page without a name. Any other path
// routed here gets the not-found page.
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respond(w, r, notFound("Nothing lives at "+r.URL.Path+"."))
		return
	}
	respond(w, r, Page{Component: view.GreetPage("")})
}

// HandleGreet renders the greeting page for ?name=. Only a missing
// parameter is rejected; an empty one renders the welcome page.
func (h *PageHandler) HandleGreet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("name") {
		respond(w, r, Error{Status: http.StatusUnprocessableEntity, Message: `query parameter "name" is required`})
		return
	}
	respond(w, r, Page{Component: view.GreetPage(query.Get("name"))})
}

const helloName = "FastAPI"

// HandleHello renders the fixed hello template.
func (h *PageHandler) HandleHello(w http.ResponseWriter, r *http.Request) {
	respond(w, r, Page{Component: view.HelloPage(helloName)})
}

// HandleConditional greets ?name=, falling back to the guest greeting.
func (h *PageHandler) HandleConditional(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = view.DefaultGuestName
	}
	respond(w, r, Page{Component: view.ConditionalPage(name)})
}

// HandleIndex serves index.html from the static directory verbatim.
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.static, indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			respond(w, r, notFound("The page "+indexFile+" is not available on this server."))
			return
		}
		slog.Error("read static page", "file", indexFile, "error", err)
		respond(w, r, errInternal)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("write static page", "file", indexFile, "error", err)
	}
}

// HandleDotPro returns a plain JSON string.
func HandleDotPro(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "Hello, dot-pro!")
}

// HandleProfile returns a plain JSON string.
func HandleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "Hello, Ryozo!")
}

// HandleNotFound renders the 404 page for any method on an unknown path.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	respond(w, r, notFound("Nothing lives at "+r.Method+" "+r.URL.Path+"."))
}

func notFound(message string) Page {
	return Page{Status: http.StatusNotFound, Component: view.NotFoundPage(message)}
}

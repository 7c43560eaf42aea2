package handler

import (
	"net/http"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, app *App) {
	pages := NewPageHandler(app.Static)
	users := NewUserHandler(app.Directory)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Greeting and demo pages. "GET /" also answers unknown GET paths with a
	// 404 page; "/" does the same for every other method.
	mux.HandleFunc("GET /", pages.HandleHome)
	mux.HandleFunc("/", HandleNotFound)
	mux.HandleFunc("GET /greet", pages.HandleGreet)
	mux.HandleFunc("GET /hello", pages.HandleHello)
	mux.HandleFunc("GET /conditional", pages.HandleConditional)
	mux.HandleFunc("GET /index", pages.HandleIndex)
	mux.HandleFunc("GET /dot-pro", HandleDotPro)
	mux.HandleFunc("GET /profile", HandleProfile)

	mux.HandleFunc("GET /fizzbuzz", HandleFizzBuzz)

	// Prime checks run trial division and are throttled per client.
	mux.Handle("GET /prime", RateLimit(app.PrimeLimiter, http.HandlerFunc(HandlePrimePage)))
	mux.Handle("GET /prime/check", RateLimit(app.PrimeLimiter, http.HandlerFunc(HandlePrimeCheck)))
	mux.Handle("GET /api/prime", RateLimit(app.PrimeLimiter, http.HandlerFunc(HandlePrimeAPI)))

	mux.HandleFunc("GET /users", users.HandleList)
	mux.Handle("POST /users", RateLimit(app.Limiter, http.HandlerFunc(users.HandleCreate)))
	mux.Handle("POST /users/{id}/delete", RateLimit(app.Limiter, http.HandlerFunc(users.HandleDelete)))
}

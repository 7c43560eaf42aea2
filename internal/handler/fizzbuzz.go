package handler

import (
	"net/http"

	"github.com/dotpro/tutorial-web/internal/service"
	"github.com/dotpro/tutorial-web/internal/view"
)

// HandleFizzBuzz classifies ?number= and renders the result.
func HandleFizzBuzz(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "number")
	if err != nil {
		respond(w, r, Error{Status: http.StatusUnprocessableEntity, Message: err.Error()})
		return
	}
	respond(w, r, Page{Component: view.FizzBuzzPage(n, service.FizzBuzz(n))})
}

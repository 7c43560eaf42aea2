package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dotpro/tutorial-web/internal/domain"
	"github.com/dotpro/tutorial-web/internal/service"
	"github.com/dotpro/tutorial-web/internal/view"
)

const usersPath = "/users"

// UserHandler serves the user directory pages.
type UserHandler struct {
	directory *service.UserDirectory
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(directory *service.UserDirectory) *UserHandler {
	return &UserHandler{directory: directory}
}

// HandleList renders every user, newest first, with the total count.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.listPage(r.Context(), http.StatusOK, view.UserForm{}, ""))
}

// HandleCreate registers a user from the form and redirects to the listing.
// A rejected form re-renders the listing with the submitted values.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	form, reg, err := bindRegistration(r)
	if err != nil {
		var fe *formError
		if errors.As(err, &fe) {
			respond(w, r, h.listPage(r.Context(), http.StatusUnprocessableEntity, form, fe.Error()))
			return
		}
		respond(w, r, Error{Status: http.StatusBadRequest, Message: "Bad Request"})
		return
	}

	if _, err := h.directory.Create(r.Context(), reg.Name, reg.Age, reg.Hobby); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respond(w, r, h.listPage(r.Context(), http.StatusUnprocessableEntity, form, "Name, age and hobby are required."))
			return
		}
		slog.Error("create user", "error", err)
		respond(w, r, errInternal)
		return
	}

	respond(w, r, Redirect{URL: usersPath})
}

// HandleDelete removes the user named in the path and redirects to the listing.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond(w, r, Error{Status: http.StatusBadRequest, Message: "Bad Request"})
		return
	}

	if err := h.directory.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respond(w, r, notFound(fmt.Sprintf("User %d does not exist. It may already have been deleted.", id)))
			return
		}
		slog.Error("delete user", "id", id, "error", err)
		respond(w, r, errInternal)
		return
	}

	respond(w, r, Redirect{URL: usersPath})
}

func (h *UserHandler) listPage(ctx context.Context, status int, form view.UserForm, errMsg string) Response {
	users, err := h.directory.List(ctx)
	if err != nil {
		slog.Error("list users", "error", err)
		return errInternal
	}
	return Page{Status: status, Component: view.UsersPage(users, form, errMsg)}
}

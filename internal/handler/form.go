package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/dotpro/tutorial-web/internal/domain"
	"github.com/dotpro/tutorial-web/internal/view"
	validator "github.com/go-playground/validator/v10"
)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// registrationForm is the raw POST /users body.
type registrationForm struct {
	Name  string `form:"name" validate:"required"`
	Age   string `form:"age" validate:"required,numeric"`
	Hobby string `form:"hobby" validate:"required"`
}

// registration is a validated registrationForm.
type registration struct {
	Name  string
	Age   int
	Hobby string
}

// formError lists every problem found in a submitted form.
type formError struct {
	problems []string
}

func (e *formError) Error() string {
	return strings.Join(e.problems, "; ")
}

func (e *formError) Unwrap() error {
	return domain.ErrInvalidInput
}

// bindRegistration parses and validates the registration form. The raw
// values are always returned so the page can redisplay them.
func bindRegistration(r *http.Request) (view.UserForm, registration, error) {
	if err := r.ParseForm(); err != nil {
		return view.UserForm{}, registration{}, fmt.Errorf("parse form: %w", err)
	}

	in := registrationForm{
		Name:  strings.TrimSpace(r.PostForm.Get("name")),
		Age:   strings.TrimSpace(r.PostForm.Get("age")),
		Hobby: strings.TrimSpace(r.PostForm.Get("hobby")),
	}
	raw := view.UserForm{Name: in.Name, Age: in.Age, Hobby: in.Hobby}

	if err := formValidator.Struct(in); err != nil {
		return raw, registration{}, toFormError(err)
	}

	age, err := strconv.Atoi(in.Age)
	if errors.Is(err, strconv.ErrRange) {
		return raw, registration{}, &formError{problems: []string{"age is out of range"}}
	}
	if err != nil {
		return raw, registration{}, &formError{problems: []string{"age must be a whole number"}}
	}

	return raw, registration{Name: in.Name, Age: age, Hobby: in.Hobby}, nil
}

func toFormError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fe := &formError{}
	for _, v := range verrs {
		switch v.Tag() {
		case "required":
			fe.problems = append(fe.problems, v.Field()+" is required")
		case "numeric":
			fe.problems = append(fe.problems, v.Field()+" must be a whole number")
		default:
			fe.problems = append(fe.problems, v.Field()+" is invalid")
		}
	}
	return fe
}

package view

import "strconv"

// DefaultGuestName is used by the conditional page when no name is given.
const DefaultGuestName = "Guest"

// UserForm carries the raw registration form values so they can be
// redisplayed after a rejected submit.
type UserForm struct {
	Name  string
	Age   string
	Hobby string
}

func userRowID(id int64) string {
	return "user-" + strconv.FormatInt(id, 10)
}

func userDeleteURL(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10) + "/delete"
}

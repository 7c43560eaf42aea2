package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// queryInt reads a required integer query parameter.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, fmt.Errorf("query parameter %q is required", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", key)
	}
	return n, nil
}

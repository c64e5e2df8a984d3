package gist

import "fmt"

// APIError: GitHub respondió fuera de 2xx. Body trae el "message" de GitHub
// (ej. "Bad credentials", "Not Found") recortado a 4 KiB.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

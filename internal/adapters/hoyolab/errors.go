package hoyolab

import (
	"errors"
	"fmt"
)

// ErrDecode: el body no es JSON válido.
var ErrDecode = errors.New("hoyolab: invalid json body")

// APIError: status HTTP distinto de 200.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hoyolab api status %d: %s", e.Status, e.Body)
}

// SchemaError: el JSON no trae data.list. Retcode/Message son los del sobre
// de HoYoLab (ej. -100 "Please login") y sirven para diagnosticar.
type SchemaError struct {
	Missing string
	Retcode int
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("hoyolab: unexpected json structure: missing %s (retcode %d: %s)", e.Missing, e.Retcode, e.Message)
}

package validate

import (
	"errors"
	"strconv"
)

// ErrNullBody marks a JSON null request body. It is not a client shape error.
var ErrNullBody = errors.New("request body is null")

type ErrField struct {
	Field string
	Msg   string
}

func (e *ErrField) Error() string { return e.Field + ": " + e.Msg }

// Helpers
func Array(field string, body any) ([]any, error) {
	if body == nil {
		return nil, ErrNullBody
	}
	obj, _ := body.(map[string]any)
	arr, ok := obj[field].([]any)
	if !ok {
		return nil, &ErrField{Field: field, Msg: "must be an array"}
	}
	return arr, nil
}

func MaxLen(field string, n, max int) error {
	if max > 0 && n > max {
		return &ErrField{Field: field, Msg: "must have at most " + strconv.Itoa(max) + " entries"}
	}
	return nil
}

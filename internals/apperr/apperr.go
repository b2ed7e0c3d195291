// internals/apperr/apperr.go
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind mengelompokkan error domain supaya controller cukup map sekali ke HTTP.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // penyebab asli (opsional), tidak pernah dikirim ke client
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "operation failed"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Forbidden(msg string) *Error  { return &Error{Kind: KindForbidden, Message: msg} }

// Internal membungkus error storage/infra apa pun. Pesan ke client selalu generik.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Terjadi kesalahan pada server", Err: err}
}

// KindOf mengembalikan kind dari error; error non-apperr dianggap internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// HTTPStatus memetakan kind ke status code fiber.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

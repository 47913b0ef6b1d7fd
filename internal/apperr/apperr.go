// Package apperr описывает ошибки предметной области и их HTTP-коды.
//
// Сервисы возвращают *Error, обработчики сопоставляют их через errors.Is:
//
//	if errors.Is(err, apperr.ErrConflict) {
//	    ...
//	}
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code машиночитаемый код ошибки.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeAuth       Code = "UNAUTHORIZED"
	CodeForbidden  Code = "FORBIDDEN"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeInternal   Code = "INTERNAL"
)

// HTTPStatus возвращает HTTP-статус для кода.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuth:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error ошибка с кодом, сообщением и необязательными деталями.
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is считает ошибки равными, если совпадают коды.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus возвращает HTTP-статус ошибки.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause возвращает копию ошибки с причиной.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, cause: err}
}

// Эталонные ошибки для errors.Is.
var (
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrAuth       = &Error{Code: CodeAuth, Message: "unauthorized"}
	ErrForbidden  = &Error{Code: CodeForbidden, Message: "forbidden"}
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrConflict   = &Error{Code: CodeConflict, Message: "conflict"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails добавляет ошибки по полям.
func ValidationWithDetails(msg string, details map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

func Auth(msg string) *Error {
	return &Error{Code: CodeAuth, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Internal оборачивает неожиданную ошибку хранилища.
func Internal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: msg, cause: cause}
}

// From приводит любую ошибку к *Error. Незнакомые ошибки становятся Internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal error", err)
}

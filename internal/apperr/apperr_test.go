package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Totarae/SecondBrain/internal/apperr"
)

func TestCodeHTTPStatus(t *testing.T) {
	cases := map[apperr.Code]int{
		apperr.CodeValidation: http.StatusBadRequest,
		apperr.CodeAuth:       http.StatusUnauthorized,
		apperr.CodeForbidden:  http.StatusForbidden,
		apperr.CodeNotFound:   http.StatusNotFound,
		apperr.CodeConflict:   http.StatusConflict,
		apperr.CodeInternal:   http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, code.HTTPStatus(), code)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("save user: %w", apperr.Conflict("username already taken"))

	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}

func TestFrom(t *testing.T) {
	plain := errors.New("connection reset")
	got := apperr.From(plain)
	assert.Equal(t, apperr.CodeInternal, got.Code)
	assert.ErrorIs(t, got, plain)

	nf := apperr.NotFound("content not found")
	assert.Same(t, nf, apperr.From(fmt.Errorf("wrap: %w", nf)))
}

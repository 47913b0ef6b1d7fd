// Package response пишет JSON-ответы и переводит ошибки apperr в HTTP-статусы.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/apperr"
)

// JSON пишет тело ответа с указанным статусом.
func JSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func OK(w http.ResponseWriter, data any, logger *zap.Logger) {
	JSON(w, http.StatusOK, data, logger)
}

func Created(w http.ResponseWriter, data any, logger *zap.Logger) {
	JSON(w, http.StatusCreated, data, logger)
}

// Error переводит ошибку в ответ. Внутренние ошибки логируются,
// клиент видит только общее сообщение.
func Error(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	appErr := apperr.From(err)
	status := appErr.HTTPStatus()

	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.Error("request failed",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
		}
		JSON(w, status, apperr.ErrInternal, logger)
		return
	}

	JSON(w, status, appErr, logger)
}

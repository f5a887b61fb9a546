package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"taskDashboard/internal/logger"
	"taskDashboard/internal/service"
)

func handleBusinessError(w http.ResponseWriter, err error) bool {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		statusCode := mapBusinessErrorToHTTP(businessErr.Code)

		logger.Warn("HTTP: Бизнес-ошибка",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))

		responseWithJSON(w, statusCode, map[string]any{
			"error":   businessErr.Code,
			"message": businessErr.Message,
			"details": businessErr.Details,
		})
		return true
	}
	return false
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION_ERROR":
		return http.StatusBadRequest
	case "VERSION_CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/PotionApp/internal/domain"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondDomainError сопоставляет доменные ошибки со статусами HTTP.
// Ошибка валидации отдает список сообщений; всё неизвестное — 500
// с обобщенным текстом, детали остаются в логе.
func respondDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	if ve, ok := domain.AsValidationError(err); ok {
		respondWithJSON(w, http.StatusBadRequest, map[string][]string{"errors": ve.Messages}, logger)
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error(), logger)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, domain.ErrUsernameTaken):
		respondWithError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error("unhandled error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "внутренняя ошибка сервера", logger)
	}
}

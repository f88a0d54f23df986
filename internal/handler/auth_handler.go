package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/PotionApp/internal/auth"
	"github.com/GoArmGo/PotionApp/internal/usecase"
)

// AuthHandler — обработчик HTTP-запросов регистрации и входа.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	tokens      *auth.TokenManager
	cookieName  string
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(
	uc usecase.AuthUseCase,
	tokens *auth.TokenManager,
	cookieName string,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: uc,
		tokens:      tokens,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// credentialsRequest — тело запросов register и login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register — регистрирует нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register body", "error", err)
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", h.logger)
		return
	}

	if err := h.authUseCase.Register(r.Context(), req.Username, req.Password); err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("user registered", "username", req.Username)
	respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Пользователь создан"}, h.logger)
}

// Login — проверяет учетные данные и выставляет сессионную cookie.
// Cookie HttpOnly и SameSite=Strict; Secure остается на совести деплоя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login body", "error", err)
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", h.logger)
		return
	}

	user, err := h.authUseCase.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(w, err, h.logger)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		respondWithError(w, http.StatusInternalServerError, "внутренняя ошибка сервера", h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.tokens.TTL().Seconds()),
	})

	h.logger.Info("user logged in", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Вход выполнен успешно"}, h.logger)
}

// Logout — очищает сессионную cookie на клиенте.
// Сам токен при этом остается действительным до истечения срока.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Выход выполнен"}, h.logger)
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/PotionApp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUseCase — подмена бизнес-логики аутентификации для тестов.
type fakeAuthUseCase struct {
	registerErr error
	loginUser   *domain.User
	loginErr    error
}

func (f *fakeAuthUseCase) Register(_ context.Context, username, password string) error {
	return f.registerErr
}

func (f *fakeAuthUseCase) Login(_ context.Context, username, password string) (*domain.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}

func TestRegisterStatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
	}{
		{name: "created", body: `{"username":"alice","password":"secret123"}`, wantStatus: http.StatusCreated},
		{name: "validation failure", body: `{"username":"ab","password":"123"}`, registerErr: domain.NewValidationError("слишком коротко"), wantStatus: http.StatusBadRequest},
		{name: "duplicate username", body: `{"username":"alice","password":"secret123"}`, registerErr: domain.ErrUsernameTaken, wantStatus: http.StatusConflict},
		{name: "malformed body", body: `{"username":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthUseCase{registerErr: tt.registerErr}, newTokenManager(t, time.Hour), testCookieName, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	tokens := newTokenManager(t, 24*time.Hour)
	user := &domain.User{ID: uuid.New(), Username: "alice"}
	h := NewAuthHandler(&fakeAuthUseCase{loginUser: user}, tokens, testCookieName, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"secret123"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, testCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	// токен в cookie декодируется в зарегистрированного пользователя
	claims, err := tokens.Parse(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

// Неверный пароль и неизвестное имя дают одинаковую форму ответа.
func TestLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUseCase{loginErr: domain.ErrInvalidCredentials}, newTokenManager(t, time.Hour), testCookieName, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "cookie не должна выставляться при отказе")
	assert.JSONEq(t, `{"error":"неверные учетные данные"}`, rec.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUseCase{}, newTokenManager(t, time.Hour), testCookieName, testLogger())

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

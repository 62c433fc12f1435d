package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusforum/internal/http-api/middleware"
	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthRouter(mockAuth *MockAuthService) *gin.Engine {
	h := NewAuthHandler(mockAuth, 3600)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.GET("/api/auth/me", withUser(2), h.Me)
	return r
}

func TestRegisterEndpoint_SetsSessionCookie(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	mockAuth.On("Register", mock.Anything, "alice", "alice@example.com", "secret123").
		Return(user, "signed-token", nil)

	body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])

	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			found = true
			assert.Equal(t, "signed-token", ck.Value)
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "session cookie should be set")
	mockAuth.AssertExpectations(t)
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	mockAuth.On("Register", mock.Anything, "alice", "alice@example.com", "secret123").
		Return(nil, "", service.ErrNameInUse)

	body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "username")
}

func TestRegisterEndpoint_InvalidPayload(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	// password too short, email malformed
	body := `{"username":"alice","email":"nope","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginEndpoint_WrongCredentials(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	mockAuth.On("Login", mock.Anything, "alice", "wrong").
		Return(nil, "", service.ErrInvalidCredentials)

	body := `{"identifier":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestLoginEndpoint_ByEmail(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	mockAuth.On("Login", mock.Anything, "alice@example.com", "secret123").
		Return(user, "signed-token", nil)

	body := `{"identifier":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestLogoutEndpoint_ClearsCookie(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	mockAuth.On("Logout", mock.Anything, "signed-token").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "cookie should be expired")
	mockAuth.AssertExpectations(t)
}

func TestMeEndpoint(t *testing.T) {
	mockAuth := new(MockAuthService)
	r := newAuthRouter(mockAuth)

	mockAuth.On("GetUser", int64(2)).Return(&models.User{ID: 2, Username: "bob"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp["username"])
}

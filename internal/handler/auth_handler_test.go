package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gymdesk/gymdesk-backend/internal/models"
	"github.com/gymdesk/gymdesk-backend/internal/service"
	"github.com/gymdesk/gymdesk-backend/internal/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_ReturnsTokenPair(t *testing.T) {
	svc := &mockAuthService{registerFn: func(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error) {
		assert.Equal(t, "ivan@example.com", email)
		user := &models.User{ID: 1, Email: email, FirstName: firstName, LastName: lastName, Role: models.RoleUser}
		return user, &token.Pair{Access: "acc", Refresh: "ref"}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext("/api/v1/auth/register",
		`{"email":"ivan@example.com","first_name":"Ivan","last_name":"Petrov","password":"s3cret"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
		User    struct {
			FullName string `json:"full_name"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "acc", body.Access)
	assert.Equal(t, "ref", body.Refresh)
	assert.Equal(t, "Ivan Petrov", body.User.FullName)
	assert.Equal(t, "USER", body.User.Role)
}

func TestRegister_EmailTakenMapsTo400(t *testing.T) {
	svc := &mockAuthService{registerFn: func(ctx context.Context, email, firstName, lastName, password string) (*models.User, *token.Pair, error) {
		return nil, nil, service.ErrEmailTaken
	}}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext("/api/v1/auth/register",
		`{"email":"ivan@example.com","first_name":"Ivan","last_name":"Petrov","password":"s3cret"}`)

	err := h.Register(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestLogin_WrongPasswordMapsTo400(t *testing.T) {
	svc := &mockAuthService{loginFn: func(ctx context.Context, email, password string) (*models.User, *token.Pair, error) {
		return nil, nil, service.ErrInvalidCredentials
	}}
	h := NewAuthHandler(svc)

	c, _ := newJSONContext("/api/v1/auth/login", `{"email":"ivan@example.com","password":"wrong"}`)

	err := h.Login(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestRefresh_MissingToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	c, _ := newJSONContext("/api/v1/auth/refresh", `{}`)

	err := h.Refresh(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestRefresh_ReturnsFreshPair(t *testing.T) {
	svc := &mockAuthService{refreshFn: func(ctx context.Context, refreshToken string) (*token.Pair, error) {
		assert.Equal(t, "old-refresh", refreshToken)
		return &token.Pair{Access: "new-acc", Refresh: "new-ref"}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext("/api/v1/auth/refresh", `{"refresh":"old-refresh"}`)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"new-acc"`)
}

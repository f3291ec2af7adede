package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	appmw "github.com/Skotchmaster/category_service/internal/middleware"
	"github.com/Skotchmaster/category_service/internal/models"
	"github.com/Skotchmaster/category_service/internal/repo"
	"github.com/Skotchmaster/category_service/internal/service"
	"github.com/Skotchmaster/category_service/internal/validation"
)

const testSignupPin = "1111"

type testEnv struct {
	T   *testing.T
	E   *echo.Echo
	DB  *gorm.DB
	Svc *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a second pooled connection would see its own empty memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}))

	gormRepo := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{
		Repo:      gormRepo,
		Method:    jwt.SigningMethodHS256,
		JWTSecret: []byte("test-jwt-secret"),
	}
	categorySvc := &service.CategoryService{Repo: gormRepo}

	e := echo.New()
	e.Validator = validation.New()

	Register(e, &Deps{
		AuthHandler:     &AuthHTTP{Svc: authSvc, SignupPin: testSignupPin},
		CategoryHandler: &CategoryHTTP{Svc: categorySvc},
		Auth:            appmw.NewBearerAuth(authSvc),
	})

	return &testEnv{T: t, E: e, DB: db, Svc: authSvc}
}

func (env *testEnv) doJSON(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	env.T.Helper()

	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
		reader = &buf
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(path string, form url.Values) *httptest.ResponseRecorder {
	env.T.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func signupBody() map[string]string {
	return map[string]string{
		"username":   "testuser",
		"email":      "test@example.com",
		"first_name": "test",
		"last_name":  "user",
		"password":   "aBcdef12*G",
		"pin":        testSignupPin,
	}
}

func (env *testEnv) signup() {
	env.T.Helper()

	rec := env.doJSON(http.MethodPost, "/v1/auth/signup", signupBody(), nil)
	require.Equal(env.T, http.StatusCreated, rec.Code)
}

func (env *testEnv) bearer() map[string]string {
	env.T.Helper()

	env.signup()

	rec := env.doForm("/v1/auth/token", url.Values{
		"username": {"testuser"},
		"password": {"aBcdef12*G"},
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.AccessToken)

	return map[string]string{echo.HeaderAuthorization: "Bearer " + resp.AccessToken}
}

func detailMessage(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Detail struct {
			Message string `json:"message"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail.Message
}

func detailList(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var resp struct {
		Detail []map[string]any `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail
}

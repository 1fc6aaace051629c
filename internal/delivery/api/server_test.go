package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"devconnector/config"
	apimiddleware "devconnector/internal/delivery/api/middleware"
	"devconnector/internal/delivery/api/router"
	"devconnector/internal/delivery/api/router/handler"
	"devconnector/internal/domain/entity"
	"devconnector/internal/infra/auth"
	"devconnector/internal/infra/gravatar"
	"devconnector/internal/infra/qrcode"
	"devconnector/internal/mocks/memory"
	mockSvc "devconnector/internal/mocks/service"
	"devconnector/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiClient drives the fully wired echo instance over an in-memory store.
type apiClient struct {
	t *testing.T
	e *echo.Echo
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "100KB"

	store := memory.NewStore()
	tokens, err := auth.NewJWTServiceWithClock("test-secret", time.Hour, time.Now)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     store.UserRepo(),
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Avatars:      gravatar.NewResolver(),
		Logger:       logger,
	})
	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		TxManager:   store,
		ProfileRepo: store.ProfileRepo(),
		Repos:       mockSvc.NewMockRepositoryLister(t),
		QRCodes:     qrcode.NewQRCodeServiceWith(256, "M", "http://localhost:3000"),
		Logger:      logger,
	})
	postUC := impl.NewPostService(impl.PostServiceParams{
		TxManager: store,
		UserRepo:  store.UserRepo(),
		PostRepo:  store.PostRepo(),
		Logger:    logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		ProfileHandler: handler.NewProfileHandler(profileUC, logger),
		PostHandler:    handler.NewPostHandler(postUC, logger),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
	})

	return &apiClient{t: t, e: e}
}

func (a *apiClient) do(method, path, token, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(apimiddleware.HeaderAuthToken, token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func (a *apiClient) register(name, email string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/users", "", `{"name":"`+name+`","email":"`+email+`","password":"secret1"}`)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(a.t, out.Token)

	return out.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestAPI_PostOwnership(t *testing.T) {
	api := newTestAPI(t)

	jane := api.register("Jane", "jane@example.com")

	rec := api.do(http.MethodGet, "/api/auth", jane, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	me := decode[map[string]any](t, rec)
	assert.Equal(t, "Jane", me["name"])
	assert.NotContains(t, me, "password")
	assert.Contains(t, me["avatar"], "gravatar.com/avatar/")

	rec = api.do(http.MethodPost, "/api/posts", jane, `{"text":"first post"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	post := decode[entity.Post](t, rec)
	assert.Equal(t, "Jane", post.Name)

	bob := api.register("Bob", "bob@example.com")

	rec = api.do(http.MethodDelete, "/api/posts/"+post.ID.String(), bob, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"User not authorized"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/posts/"+post.ID.String(), bob, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "first post", decode[entity.Post](t, rec).Text)

	rec = api.do(http.MethodPut, "/api/posts/like/"+post.ID.String(), bob, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Like](t, rec), 1)

	rec = api.do(http.MethodPut, "/api/posts/like/"+post.ID.String(), bob, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"Post already liked"}`, rec.Body.String())

	rec = api.do(http.MethodDelete, "/api/posts/"+post.ID.String(), jane, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Post deleted"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/posts/"+post.ID.String(), bob, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Post not found"}`, rec.Body.String())
}

func TestAPI_AuthGate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/auth", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"No token, authorization denied"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/posts", "garbage", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())

	// Public routes stay open.
	rec = api.do(http.MethodGet, "/api/profile", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = api.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)
	api.register("Jane", "jane@example.com")

	rec := api.do(http.MethodPost, "/api/users", "", `{"name":"Jane","email":"Jane@Example.com","password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/auth", "", `{"email":"jane@example.com","password":"wrong-one"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid Credentials"}]}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/auth", "", `{"email":"nobody@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid Credentials"}]}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/auth", "", `{"email":" JANE@example.com ","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[map[string]string](t, rec)["token"])
}

func TestAPI_RegisterInputLimits(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "password over 72 bytes in multibyte runes",
			body: `{"name":"Jane","email":"jane@example.com","password":"` + strings.Repeat("é", 40) + `"}`,
			want: `{"errors":[{"msg":"Password must be 72 bytes or fewer","param":"password"}]}`,
		},
		{
			name: "name longer than the users.name column",
			body: `{"name":"` + strings.Repeat("a", 101) + `","email":"jane@example.com","password":"secret1"}`,
			want: `{"errors":[{"msg":"Name must be 100 characters or fewer","param":"name"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/api/users", "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}

	// Nothing was stored: the same email still registers.
	api.register("Jane", "jane@example.com")
}

func TestAPI_ProfileLifecycle(t *testing.T) {
	api := newTestAPI(t)
	jane := api.register("Jane", "jane@example.com")
	bob := api.register("Bob", "bob@example.com")

	rec := api.do(http.MethodGet, "/api/profile/me", jane, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"There is no profile for this user"}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/profile", jane, `{"status":"Developer","skills":"go, sql ,,docker","twitter":"https://twitter.com/jane"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[entity.Profile](t, rec)
	assert.Equal(t, []string{"go", "sql", "docker"}, profile.Skills)
	assert.Equal(t, "Jane", profile.User.Name)

	rec = api.do(http.MethodPut, "/api/profile/experience", jane, `{"title":"Dev","company":"Acme","from":"2019-05-01","current":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	profile = decode[entity.Profile](t, rec)
	require.Len(t, profile.Experience, 1)

	rec = api.do(http.MethodGet, "/api/profile/user/"+profile.User.ID.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodGet, "/api/profile/user/"+profile.User.ID.String()+"/qrcode", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = api.do(http.MethodDelete, "/api/profile/experience/"+profile.Experience[0].ID.String(), bob, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Experience not found"}`, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/posts", jane, `{"text":"bye"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	post := decode[entity.Post](t, rec)

	rec = api.do(http.MethodDelete, "/api/profile", jane, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User deleted"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/posts/"+post.ID.String(), bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/profile", "", "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	// The token still verifies but the identity is gone.
	rec = api.do(http.MethodGet, "/api/auth", jane, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"User not found"}`, rec.Body.String())
}

package handler

import (
	"net/http"
	"testing"
	"time"

	"devconnector/internal/domain/entity"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"
	mockUsecase "devconnector/internal/mocks/usecase"
	"devconnector/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixture struct {
	e      *echo.Echo
	uc     *mockUsecase.MockProfileUsecase
	userID uuid.UUID
}

func createTestProfileHandler(t *testing.T) *profileHandlerFixture {
	t.Helper()

	userID := uuid.New()
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/api/profile", h.List)
	e.GET("/api/profile/user/:user_id", h.GetByUserID)
	e.GET("/api/profile/user/:user_id/qrcode", h.ShareCode)
	e.GET("/api/profile/github/:username", h.GitHubRepos)

	gated := e.Group("/api/profile", signedIn(userID))
	gated.GET("/me", h.GetMine)
	gated.POST("", h.Upsert)
	gated.DELETE("", h.DeleteAccount)
	gated.PUT("/experience", h.AddExperience)
	gated.DELETE("/experience/:exp_id", h.RemoveExperience)
	gated.PUT("/education", h.AddEducation)
	gated.DELETE("/education/:edu_id", h.RemoveEducation)

	return &profileHandlerFixture{e: e, uc: uc, userID: userID}
}

func TestProfileHandler_GetMine(t *testing.T) {
	f := createTestProfileHandler(t)
	f.uc.EXPECT().GetMine(mock.Anything, f.userID).Return(nil, domainerrors.ErrNoProfileForUser).Once()

	rec := doJSON(t, f.e, http.MethodGet, "/api/profile/me", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"There is no profile for this user"}`, rec.Body.String())
}

func TestProfileHandler_Upsert(t *testing.T) {
	t.Run("status and skills are required", func(t *testing.T) {
		f := createTestProfileHandler(t)

		rec := doJSON(t, f.e, http.MethodPost, "/api/profile", `{"company":"Acme"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"Status is required","param":"status"},{"msg":"Skills is required","param":"skills"}]}`, rec.Body.String())
	})

	t.Run("passes the flat body through", func(t *testing.T) {
		f := createTestProfileHandler(t)
		want := &usecase.UpsertProfileInput{Status: "Developer", Skills: "go, sql", Twitter: "https://twitter.com/jane"}
		f.uc.EXPECT().Upsert(mock.Anything, f.userID, want).
			Return(&entity.Profile{Status: "Developer", Skills: []string{"go", "sql"}}, nil).Once()

		rec := doJSON(t, f.e, http.MethodPost, "/api/profile", `{"status":"Developer","skills":"go, sql","twitter":"https://twitter.com/jane"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"skills":["go","sql"]`)
	})
}

func TestProfileHandler_GetByUserID(t *testing.T) {
	t.Run("malformed id reads as missing profile", func(t *testing.T) {
		f := createTestProfileHandler(t)

		rec := doJSON(t, f.e, http.MethodGet, "/api/profile/user/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"msg":"Profile not found"}`, rec.Body.String())
	})

	t.Run("repository failure is a generic server error", func(t *testing.T) {
		f := createTestProfileHandler(t)
		target := uuid.New()
		f.uc.EXPECT().GetByUserID(mock.Anything, target).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find profile")).Once()

		rec := doJSON(t, f.e, http.MethodGet, "/api/profile/user/"+target.String(), "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"msg":"Server Error"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestProfileHandler_ShareCode(t *testing.T) {
	f := createTestProfileHandler(t)
	target := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	f.uc.EXPECT().ShareCode(mock.Anything, target).Return(png, nil).Once()

	rec := doJSON(t, f.e, http.MethodGet, "/api/profile/user/"+target.String()+"/qrcode", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	f := createTestProfileHandler(t)
	f.uc.EXPECT().DeleteAccount(mock.Anything, f.userID).Return(nil).Once()

	rec := doJSON(t, f.e, http.MethodDelete, "/api/profile", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"User deleted"}`, rec.Body.String())
}

func TestProfileHandler_Experience(t *testing.T) {
	t.Run("unparseable from date", func(t *testing.T) {
		f := createTestProfileHandler(t)

		rec := doJSON(t, f.e, http.MethodPut, "/api/profile/experience", `{"title":"Dev","company":"Acme","from":"last spring"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":[{"msg":"From date is invalid","param":"from"}]}`, rec.Body.String())
	})

	t.Run("adds an entry", func(t *testing.T) {
		f := createTestProfileHandler(t)
		f.uc.EXPECT().AddExperience(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.EntryInput) bool {
			return in.Title == "Dev" && in.Company == "Acme" && in.From.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) && in.To == nil && in.Current
		})).Return(&entity.Profile{}, nil).Once()

		rec := doJSON(t, f.e, http.MethodPut, "/api/profile/experience", `{"title":"Dev","company":"Acme","from":"2020-01-02","current":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed entry id", func(t *testing.T) {
		f := createTestProfileHandler(t)

		rec := doJSON(t, f.e, http.MethodDelete, "/api/profile/experience/42", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"Experience not found"}`, rec.Body.String())
	})
}

func TestProfileHandler_Education(t *testing.T) {
	f := createTestProfileHandler(t)
	eduID := uuid.New()
	f.uc.EXPECT().RemoveEducation(mock.Anything, f.userID, eduID).Return(nil, domainerrors.ErrEducationNotFound).Once()

	rec := doJSON(t, f.e, http.MethodDelete, "/api/profile/education/"+eduID.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"Education not found"}`, rec.Body.String())
}

func TestProfileHandler_GitHubRepos(t *testing.T) {
	f := createTestProfileHandler(t)
	f.uc.EXPECT().GitHubRepos(mock.Anything, "octocat").Return(nil, domainerrors.ErrGitHubProfileNotFound).Once()

	rec := doJSON(t, f.e, http.MethodGet, "/api/profile/github/octocat", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"No Github profile found"}`, rec.Body.String())
}

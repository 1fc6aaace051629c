package handler

import (
	"log/slog"
	"net/http"

	"devconnector/internal/delivery/api/response"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves profiles, their entries, GitHub listings and account deletion.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

func (h *ProfileHandler) GetMine(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

// Upsert handles POST /api/profile.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.Upsert(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profiles)
}

// GetByUserID handles GET /api/profile/user/:user_id. A malformed id reads as a missing profile.
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	userID, err := pathID(c, "user_id", domainerrors.ErrProfileNotFound)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

// ShareCode handles GET /api/profile/user/:user_id/qrcode.
func (h *ProfileHandler) ShareCode(c echo.Context) error {
	userID, err := pathID(c, "user_id", domainerrors.ErrProfileNotFound)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// DeleteAccount handles DELETE /api/profile.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted")
}

func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ExperienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	profile, err := h.uc.AddExperience(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	expID, err := pathID(c, "exp_id", domainerrors.ErrExperienceNotFound)
	if err != nil {
		return err
	}

	profile, err := h.uc.RemoveExperience(c.Request().Context(), userID, expID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req EducationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	profile, err := h.uc.AddEducation(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	eduID, err := pathID(c, "edu_id", domainerrors.ErrEducationNotFound)
	if err != nil {
		return err
	}

	profile, err := h.uc.RemoveEducation(c.Request().Context(), userID, eduID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, profile)
}

// GitHubRepos handles GET /api/profile/github/:username.
func (h *ProfileHandler) GitHubRepos(c echo.Context) error {
	repos, err := h.uc.GitHubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, repos)
}

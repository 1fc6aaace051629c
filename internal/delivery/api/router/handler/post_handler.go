package handler

import (
	"log/slog"
	"net/http"

	"devconnector/internal/delivery/api/response"
	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PostHandler serves the feed. Every route sits behind the auth gate.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{uc: uc, logger: logger}
}

func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req TextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.uc.Create(c.Request().Context(), userID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, posts)
}

func (h *PostHandler) Get(c echo.Context) error {
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Post deleted")
}

func (h *PostHandler) Like(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}

	likes, err := h.uc.Like(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, likes)
}

func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}

	likes, err := h.uc.Unlike(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, likes)
}

func (h *PostHandler) Comment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}

	var req TextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comments, err := h.uc.Comment(c.Request().Context(), userID, postID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, comments)
}

// Uncomment handles DELETE /api/posts/comment/:id/:comment_id.
func (h *PostHandler) Uncomment(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id", domainerrors.ErrPostNotFound)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "comment_id", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	comments, err := h.uc.Uncomment(c.Request().Context(), userID, postID, commentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, comments)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"devconnector/internal/delivery/api/middleware"
	"devconnector/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	gate := r.authMiddleware.Authenticate
	api := e.Group("/api")

	api.POST("/users", r.authHandler.Register)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("", r.authHandler.Login)
		authGroup.GET("", r.authHandler.Me, gate)
	}

	profileGroup := api.Group("/profile")
	{
		// Public
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.GET("/user/:user_id", r.profileHandler.GetByUserID)
		profileGroup.GET("/user/:user_id/qrcode", r.profileHandler.ShareCode)
		profileGroup.GET("/github/:username", r.profileHandler.GitHubRepos)

		// Signed in
		profileGroup.GET("/me", r.profileHandler.GetMine, gate)
		profileGroup.POST("", r.profileHandler.Upsert, gate)
		profileGroup.DELETE("", r.profileHandler.DeleteAccount, gate)
		profileGroup.PUT("/experience", r.profileHandler.AddExperience, gate)
		profileGroup.DELETE("/experience/:exp_id", r.profileHandler.RemoveExperience, gate)
		profileGroup.PUT("/education", r.profileHandler.AddEducation, gate)
		profileGroup.DELETE("/education/:edu_id", r.profileHandler.RemoveEducation, gate)
	}

	postsGroup := api.Group("/posts", gate)
	{
		postsGroup.POST("", r.postHandler.Create)
		postsGroup.GET("", r.postHandler.List)
		postsGroup.GET("/:id", r.postHandler.Get)
		postsGroup.DELETE("/:id", r.postHandler.Delete)
		postsGroup.PUT("/like/:id", r.postHandler.Like)
		postsGroup.PUT("/unlike/:id", r.postHandler.Unlike)
		postsGroup.POST("/comment/:id", r.postHandler.Comment)
		postsGroup.DELETE("/comment/:id/:comment_id", r.postHandler.Uncomment)
	}
}

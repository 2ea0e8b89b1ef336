// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamedash/internal/delivery/http/middleware"
	"gamedash/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	PasswordResetHandler *handler.PasswordResetHandler
	GameHandler          *handler.GameHandler
	ReviewHandler        *handler.ReviewHandler
	ActivityHandler      *handler.ActivityHandler
	StoreHandler         *handler.StoreHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.RefreshToken)
		authGroup.POST("/logout", r.params.UserHandler.Logout)
		authGroup.POST("/password-reset/request", r.params.PasswordResetHandler.RequestReset)
		authGroup.POST("/password-reset/confirm", r.params.PasswordResetHandler.ConfirmReset)
	}

	// Profile for the authenticated user
	e.GET("/users/me", r.params.UserHandler.GetProfile, auth.Authenticate)
	e.PUT("/users/me", r.params.UserHandler.UpdateProfile, auth.Authenticate)

	// User administration
	userGroup := e.Group("/users", auth.Authenticate, auth.RequireAdmin)
	{
		userGroup.GET("", r.params.UserHandler.ListUsers)
		userGroup.GET("/:id", r.params.UserHandler.GetUser)
	}

	// Game catalog: reads are public, mutations need a principal
	gameGroup := e.Group("/games")
	{
		gameGroup.GET("", r.params.GameHandler.ListGames)
		gameGroup.GET("/:id", r.params.GameHandler.GetGame)
		gameGroup.POST("", r.params.GameHandler.CreateGame, auth.Authenticate)
		gameGroup.PUT("/:id", r.params.GameHandler.UpdateGame, auth.Authenticate)
		gameGroup.DELETE("/:id", r.params.GameHandler.DeleteGame, auth.Authenticate)
		gameGroup.GET("/:id/reviews", r.params.ReviewHandler.ListGameReviews)
		gameGroup.POST("/:id/reviews", r.params.ReviewHandler.CreateGameReview, auth.Authenticate)
	}

	// Reviews: reads are public, mutations need a principal
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.params.ReviewHandler.ListReviews)
		reviewGroup.GET("/:id", r.params.ReviewHandler.GetReview)
		reviewGroup.POST("", r.params.ReviewHandler.CreateReview, auth.Authenticate)
		reviewGroup.PUT("/:id", r.params.ReviewHandler.UpdateReview, auth.Authenticate)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.DeleteReview, auth.Authenticate)
		reviewGroup.POST("/:id/image", r.params.ReviewHandler.UploadImage, auth.Authenticate)
	}

	// Player analytics: reads are public, writes need a principal,
	// deletion is admin only (enforced in the use case)
	activityGroup := e.Group("/activities")
	{
		activityGroup.GET("", r.params.ActivityHandler.ListActivities)
		activityGroup.GET("/:id", r.params.ActivityHandler.GetActivity)
		activityGroup.POST("", r.params.ActivityHandler.RecordActivity, auth.Authenticate)
		activityGroup.DELETE("/:id", r.params.ActivityHandler.DeleteActivity, auth.Authenticate)
	}

	// External store proxy
	e.GET("/store/apps/:appid", r.params.StoreHandler.GetAppDetails, auth.Authenticate)
}

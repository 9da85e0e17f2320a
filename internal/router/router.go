package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"edumodules/internal/auth"
	"edumodules/internal/handler"
	"edumodules/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	moduleHandler *handler.ModuleHandler,
	lessonHandler *handler.LessonHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes: registration and token management.
	e.POST("/users/users/", userHandler.Create)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// Everything else requires a valid access token and a live account.
	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	})
	secured := e.Group("", jwtMiddleware, auth.LoadActor(users))

	// Module routes.
	secured.POST("/module/create/", moduleHandler.Create)
	secured.GET("/module/list/", moduleHandler.List)
	secured.GET("/module/detail/:id/", moduleHandler.Detail)
	secured.PUT("/module/update/:id/", moduleHandler.Update)
	secured.DELETE("/module/delete/:id/", moduleHandler.Delete)

	// Lesson resource routes.
	secured.GET("/lessons/", lessonHandler.List)
	secured.POST("/lessons/", lessonHandler.Create)
	secured.GET("/lessons/:id/", lessonHandler.Get)
	secured.PUT("/lessons/:id/", lessonHandler.Update)
	secured.PATCH("/lessons/:id/", lessonHandler.Update)
	secured.DELETE("/lessons/:id/", lessonHandler.Delete)

	// User resource routes (create is public, above).
	secured.GET("/users/users/", userHandler.List)
	secured.GET("/users/users/:id/", userHandler.Get)
	secured.PUT("/users/users/:id/", userHandler.Update)
	secured.PATCH("/users/users/:id/", userHandler.Update)
	secured.DELETE("/users/users/:id/", userHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

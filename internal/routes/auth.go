package routes

import (
	"github.com/gin-gonic/gin"

	"lgasportal/internal/handlers"
	"lgasportal/internal/middlewares"
	"lgasportal/internal/services"
)

type AuthRoutes struct {
	handler     *handlers.AuthHandler
	authService *services.AuthService
}

func NewAuthRoutes(handler *handlers.AuthHandler, authService *services.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: handler, authService: authService}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", r.handler.Register)
		auth.POST("/login", r.handler.Login)
		auth.POST("/refresh", r.handler.Refresh)
		auth.POST("/logout", middlewares.Authenticate(r.authService), r.handler.Logout)
	}

	profiles := router.Group("/profiles")
	profiles.Use(middlewares.Authenticate(r.authService))
	{
		profiles.GET("/me", r.handler.Me)
	}
}

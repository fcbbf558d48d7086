package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lgasportal/internal/models"
	"lgasportal/internal/responses"
	"lgasportal/internal/services"
)

// Cookie configuration
const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = 30 * 24 * 3600 // seconds
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your email, password and full name correctly")
		return
	}

	accessToken, refreshToken, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Could not register user")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusCreated, gin.H{
		"access_token": accessToken,
	}, "New user registered successfully!")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid format")
		return
	}

	accessToken, refreshToken, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.Error(c, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, refreshToken, RefreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusOK, gin.H{
		"access_token": accessToken,
	}, "Login successful")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	accessToken, newRefreshToken, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Error(c, err, "Invalid or expired refresh token")
		return
	}

	c.SetCookie(RefreshTokenCookieName, newRefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusOK, gin.H{
		"access_token": accessToken,
	}, "Access token refreshed successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if jti := c.GetString("jti"); jti != "" {
		if err := h.authService.Logout(c.Request.Context(), jti); err != nil {
			responses.Error(c, err, "Could not end session")
			return
		}
	}

	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	profile, err := h.authService.Profile(c.Request.Context(), session.ProfileID)
	if err != nil {
		responses.Error(c, err, "Could not load profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "")
}

// sessionFromContext pulls the session the Authenticate middleware
// stored on the request.
func sessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}

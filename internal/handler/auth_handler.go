package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfcheck/internal/middleware"
	"pdfcheck/internal/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService  service.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure, which production deployments behind TLS need.
func NewAuthHandler(authService service.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, secureCookie: secureCookie}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with the shared password
// @Description Sets the session cookie. A request that already carries a valid session succeeds without a new cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Password"
// @Success 200 {object} Response{data=AuthStatus}
// @Failure 400 {object} ErrorResponseBody "Password missing"
// @Failure 401 {object} ErrorResponseBody "Invalid password"
// @Failure 500 {object} ErrorResponseBody "No password configured"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if token := middleware.ExtractToken(c, h.cookieName); token != "" {
		if _, err := h.authService.ValidateToken(token); err == nil {
			RespondOK(c, AuthStatus{Authenticated: true})
			return
		}
	}

	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.Token, int(h.authService.SessionTTL().Seconds()), "/", "", h.secureCookie, true)
	RespondOK(c, AuthStatus{Authenticated: true, ExpiresAt: &session.ExpiresAt})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=AuthStatus}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	RespondOK(c, AuthStatus{Authenticated: false})
}

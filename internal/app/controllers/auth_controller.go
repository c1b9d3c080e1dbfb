package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edukta/backend/internal/app/models/dto"
	"github.com/edukta/backend/internal/app/services"
	"github.com/edukta/backend/internal/middleware"
	"github.com/edukta/backend/internal/pkg/logger"
	"github.com/edukta/backend/internal/pkg/oauth"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	authService *services.AuthService
	google      *oauth.GoogleAuthenticator
	frontendURL string
}

// NewAuthController creates a new AuthController
func NewAuthController(
	authService *services.AuthService,
	google *oauth.GoogleAuthenticator,
	frontendURL string,
) *AuthController {
	return &AuthController{
		authService: authService,
		google:      google,
		frontendURL: frontendURL,
	}
}

// SignIn handles POST /auth/sign-in
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid credentials payload", nil)
		return
	}

	resp, err := ctrl.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Signed in", resp)
}

// Register handles POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid registration payload", nil)
		return
	}

	resp, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered", resp)
}

// Refresh handles POST /auth/refresh
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "Invalid refresh payload", nil)
		return
	}

	resp, err := ctrl.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "Token refreshed", resp)
}

// SignOut handles POST /auth/sign-out
func (ctrl *AuthController) SignOut(c *gin.Context) {
	var req dto.SignOutRequest
	// The body is optional, but a body that is present must parse so a
	// garbled refresh token is not silently dropped without revocation.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respond(c, http.StatusBadRequest, "Invalid sign-out payload", nil)
		return
	}

	if err := ctrl.authService.SignOut(c.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, false)
	respond(c, http.StatusOK, "Signed out", nil)
}

// GoogleLogin handles GET /auth/google/login. It stores an anti-forgery state in
// the session and redirects to Google's consent screen.
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	if !ctrl.google.Enabled() {
		respond(c, http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
		return
	}

	state := uuid.New().String()
	url, err := ctrl.google.BeginLogin(c.Writer, c.Request, state)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to start Google login")
		respond(c, http.StatusInternalServerError, "", nil)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback. On success the session
// data the frontend needs lands in cookies readable by its scripts, and the
// browser is redirected to the frontend.
func (ctrl *AuthController) GoogleCallback(c *gin.Context) {
	if !ctrl.google.Enabled() {
		respond(c, http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
		return
	}

	if !ctrl.google.ValidateState(c.Request, c.Query("state")) {
		respond(c, http.StatusUnauthorized, "Invalid OAuth state", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		respond(c, http.StatusBadRequest, "Missing authorization code", nil)
		return
	}

	googleUser, err := ctrl.google.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error().Err(err).Msg("Google code exchange failed")
		respond(c, http.StatusUnauthorized, "Google authentication failed", nil)
		return
	}

	user, err := ctrl.authService.GetOrCreateGoogleUser(c.Request.Context(), googleUser)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resp, err := ctrl.authService.IssueTokensFor(c.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	// The frontend reads these cookies on landing, so they are deliberately
	// not httpOnly.
	maxAge := int(resp.ExpiresIn)
	c.SetCookie(middleware.AuthCookieName, resp.Token, maxAge, "/", "", false, false)
	c.SetCookie("has_uploaded_cv", strconv.FormatBool(user.HasCV), maxAge, "/", "", false, false)
	c.SetCookie("user_id", strconv.FormatInt(user.ID, 10), maxAge, "/", "", false, false)
	c.SetCookie("user_role", strconv.FormatInt(int64(user.RoleID), 10), maxAge, "/", "", false, false)

	c.Redirect(http.StatusTemporaryRedirect, ctrl.frontendURL)
}

// Me handles GET /auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	user, err := ctrl.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respond(c, http.StatusOK, "", dto.FromUser(user))
}

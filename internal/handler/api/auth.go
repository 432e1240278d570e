package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/pkg/jwt"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	q          queries.UserQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		q:          q,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary User login
// @Description Login with email and password. Tokens are issued as HttpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	h.setTokenCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{User: user})
}

// @Summary Register
// @Description Sign up as a customer or hall owner
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} queries.AuthorizedUserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	userID, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh token cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Refresh token is required", nil)
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTokenValidation), errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid refresh token", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.setTokenCookies(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{Message: "Tokens refreshed"})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookies(c *gin.Context, pair *commands.TokenPair) {
	if pair == nil {
		return
	}
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}

package handler

import (
	"net/http"

	"receiptpro/internal/dto"
	"receiptpro/internal/middleware"
	"receiptpro/internal/service"

	"github.com/labstack/echo/v4"
)

// AuthHandler is the thin stand-in for the external identity provider: it
// trusts the submitted profile, upserts the account, and issues the signed
// session cookie the rest of the API authorizes against.
type AuthHandler struct {
	userService service.UserService
	sessions    *middleware.Sessions
}

func NewAuthHandler(userService service.UserService, sessions *middleware.Sessions) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(h.sessions.IssueUserCookie(user.ID))
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie(middleware.UserCookie))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(middleware.CtxUserID).(string)

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

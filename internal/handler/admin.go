package handler

import (
	"net/http"

	"receiptpro/internal/dto"
	"receiptpro/internal/middleware"
	"receiptpro/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService   service.AdminService
	receiptService service.ReceiptService
	sessions       *middleware.Sessions
}

func NewAdminHandler(
	adminService service.AdminService,
	receiptService service.ReceiptService,
	sessions *middleware.Sessions,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		receiptService: receiptService,
		sessions:       sessions,
	}
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	admin, err := h.adminService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return httpError(c, err)
	}

	c.SetCookie(h.sessions.IssueAdminCookie(admin.ID))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ClearCookie(middleware.AdminCookie))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AdminHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{
		"isAdmin": h.sessions.IsAdmin(c),
	})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListReceipts(c echo.Context) error {
	receipts, err := h.adminService.ListReceipts(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, receipts)
}

func (h *AdminHandler) AddCredits(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCreditsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.adminService.AddCredits(ctx, &req)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ResendReceipt re-sends an existing receipt's email for operator follow-up
// on failed deliveries. Credits are never charged for a resend.
func (h *AdminHandler) ResendReceipt(c echo.Context) error {
	ctx := c.Request().Context()
	receiptID := c.Param("id")

	resp, err := h.receiptService.Resend(ctx, receiptID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

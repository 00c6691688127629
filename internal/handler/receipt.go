package handler

import (
	"net/http"

	"receiptpro/internal/dto"
	"receiptpro/internal/middleware"
	"receiptpro/internal/service"

	"github.com/labstack/echo/v4"
)

type ReceiptHandler struct {
	receiptService service.ReceiptService
}

func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

func (h *ReceiptHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(middleware.CtxUserID).(string)

	var req dto.CreateReceiptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.receiptService.Create(ctx, userID, &req)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ReceiptHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(middleware.CtxUserID).(string)

	receipts, err := h.receiptService.ListForUser(ctx, userID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, receipts)
}

package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/repository"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewOrderHandler(uc *usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type NextOrderIDResponse struct {
	NextOrderID string `json:"next_order_id"`
}

// /orders, /orders/next_id を登録
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, sessions repository.SessionStore, creds middleware.CredentialSource) {
	g := e.Group("/orders")
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.CredentialGuard(creds))

	g.POST("", h.checkout)
	g.GET("/next_id", h.nextID)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	token, email, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//Duty Personはセッションのemailをそのまま記録する
	out, err := h.uc.Checkout(c.Request().Context(), token, email, usecase.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) nextID(c echo.Context) error {
	id, err := h.uc.NextOrderID(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, NextOrderIDResponse{NextOrderID: id})
}

package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/repository"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemRequest struct {
	Identifier string `json:"identifier"`
	Quantity   int64  `json:"quantity"`
}

// /cart を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo, sessions repository.SessionStore, creds middleware.CredentialSource) {
	g := e.Group("/cart")
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.CredentialGuard(creds))

	g.GET("", h.getCart)
	g.POST("", h.addItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	token, _, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	token, _, ok := getSessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), token, usecase.AddItemInput{
		Identifier: req.Identifier,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

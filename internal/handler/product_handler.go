package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/repository"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// middlewareが保存したセッション情報を取り出す
func getSessionFromContext(c echo.Context) (string, string, bool) {
	token, ok := c.Get(middleware.CtxSessionTokenKey).(string)
	if !ok || token == "" {
		return "", "", false
	}
	email, _ := c.Get(middleware.CtxUserEmailKey).(string)
	return token, email, true
}

// /products のHTTP
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// /products, /products/{barcode} を登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, sessions repository.SessionStore, creds middleware.CredentialSource) {
	g := e.Group("/products")
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.CredentialGuard(creds))

	g.GET("", h.listAll)
	g.GET("/:barcode", h.resolve)
}

// 手動選択フォールバック用の全件一覧
func (h *ProductHandler) listAll(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) resolve(c echo.Context) error {
	out, err := h.uc.Resolve(c.Request().Context(), c.Param("barcode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

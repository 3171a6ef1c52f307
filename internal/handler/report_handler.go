package handler

import (
	"fmt"
	"net/http"
	"time"

	"pos/internal/middleware"
	"pos/internal/repository"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /summaryのHTTP
type ReportHandler struct {
	uc *usecase.ReportUsecase
}

// DI
func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// /summary, /summary/export を登録
func (h *ReportHandler) RegisterRoutes(e *echo.Echo, sessions repository.SessionStore, creds middleware.CredentialSource) {
	g := e.Group("/summary")
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.CredentialGuard(creds))

	g.GET("", h.summary)
	g.GET("/export", h.exportCSV)
}

// ?date=YYYY-MM-DD。省略時はUTCの今日
func parseDateParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

func (h *ReportHandler) summary(c echo.Context) error {
	day, err := parseDateParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	out, err := h.uc.SummaryForDate(c.Request().Context(), day)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) exportCSV(c echo.Context) error {
	day, err := parseDateParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	data, err := h.uc.ExportCSV(c.Request().Context(), day)
	if err != nil {
		return writeError(c, err)
	}

	filename := fmt.Sprintf("sales_%s.csv", day.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

package server

import (
	"net/http"
	"time"

	"pos/internal/handler"
	"pos/internal/middleware"
	"pos/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Report  *handler.ReportHandler
}

func Start(addr string, h Handlers, sessions repository.SessionStore, creds middleware.CredentialSource, logger *zap.Logger) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(requestLog(logger))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Khaapa POS Backend"})
	})

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e, sessions, creds)
	h.Cart.RegisterRoutes(e, sessions, creds)
	h.Order.RegisterRoutes(e, sessions, creds)
	h.Report.RegisterRoutes(e, sessions, creds)

	return e.Start(addr)
}

// 1リクエスト1行のアクセスログ
func requestLog(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("took", time.Since(start)),
			)
			return err
		}
	}
}

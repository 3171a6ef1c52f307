package middleware

import (
	"context"
	"errors"
	"net/http"

	"pos/internal/domain/model"
	auth "pos/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 有効なクレデンシャルを取ってくる約束（実体はCredentialUsecase）
type CredentialSource interface {
	CurrentCredential(ctx context.Context, token string) (model.Credential, error)
}

// 外部ストアに触るルート用。期限切れならここでrefreshが走り、
// refreshできなければ再ログインを要求する。
func CredentialGuard(creds CredentialSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(CtxSessionTokenKey).(string)
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if _, err := creds.CurrentCredential(c.Request().Context(), token); err != nil {
				if errors.Is(err, auth.ErrCredentialExpired) {
					return c.JSON(http.StatusUnauthorized, errorJSON("credential expired"))
				}
				if errors.Is(err, auth.ErrUnauthenticated) {
					return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
				}
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			return next(c)
		}
	}
}

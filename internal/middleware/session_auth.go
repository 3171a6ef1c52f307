package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pos/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	CtxSessionTokenKey = "session_token" // string
	CtxUserEmailKey    = "user_email"    // string

	SessionCookieName = "session_key"
)

// セッションCookie（またはBearer）の検証ミドルウェア。
// ストアを触る前に弾くので、未ログインの呼び出しは外部ストアに届かない。
func SessionAuth(sessions repository.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sess, err := sessions.Find(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
				}
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			//contextへ保存
			c.Set(CtxSessionTokenKey, sess.Token)
			c.Set(CtxUserEmailKey, sess.Email)

			return next(c)
		}
	}
}

// Cookie優先、無ければAuthorization: Bearer
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return ""
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

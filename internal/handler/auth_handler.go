package handler

import (
	"errors"
	"net/http"

	"pos/internal/middleware"
	auth "pos/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /login, /auth/callback, /logout のHTTP
type AuthHandler struct {
	loginUC *auth.LoginUsecase
	credUC  *auth.CredentialUsecase
	secure  bool // prodならCookieにSecureを付ける
}

// DI
func NewAuthHandler(loginUC *auth.LoginUsecase, credUC *auth.CredentialUsecase, secure bool) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		credUC:  credUC,
		secure:  secure,
	}
}

// 認証前でも呼べるルート
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/login", h.login)
	e.GET("/auth/callback", h.callback)
	e.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c echo.Context) error {
	url, err := h.loginUC.LoginRedirect(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.Redirect(http.StatusFound, url)
}

func (h *AuthHandler) callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	out, err := h.loginUC.CompleteLogin(c.Request().Context(), code, state)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidState) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid state"})
		}
		if errors.Is(err, auth.ErrAuthExchange) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "auth exchange failed"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	//セッショントークンをCookieへ
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.credUC.Logout(c.Request().Context(), cookie.Value); err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	//Cookieも無効化
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

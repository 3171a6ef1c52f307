package oauth

import (
	"context"
	"errors"

	"pos/internal/domain/model"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Googleの認可コードフロー実装。
type GoogleClient struct {
	cfg *oauth2.Config
}

func NewGoogleClient(clientID string, clientSecret string, redirectURL string) *GoogleClient {
	return &GoogleClient{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/spreadsheets",
			},
		},
	}
}

func (c *GoogleClient) AuthCodeURL(state string) string {
	//refresh tokenが欲しいのでoffline
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange は認可コードをトークンに交換し、IDトークン（生JWT）も返す。
func (c *GoogleClient) Exchange(ctx context.Context, code string) (model.Credential, string, error) {
	tok, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return model.Credential{}, "", err
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return model.Credential{}, "", errors.New("no id_token in token response")
	}

	return model.Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}, rawIDToken, nil
}

// Refresh はrefresh tokenで新しいアクセストークンを取る。
func (c *GoogleClient) Refresh(ctx context.Context, cred model.Credential) (model.Credential, error) {
	if cred.RefreshToken == "" {
		return model.Credential{}, errors.New("no refresh token")
	}

	src := c.cfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cred.RefreshToken,
	})

	tok, err := src.Token()
	if err != nil {
		return model.Credential{}, err
	}

	//プロバイダがrefresh tokenを返さないことがあるので引き継ぐ
	refreshToken := tok.RefreshToken
	if refreshToken == "" {
		refreshToken = cred.RefreshToken
	}

	return model.Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: refreshToken,
		Expiry:       tok.Expiry,
	}, nil
}

package oauth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// IDトークンの検証。署名鍵はkeyfuncで差し替えられる
// （本番はプロバイダの公開鍵、テストはHMACシークレット）。
type JWTVerifier struct {
	keyFunc  jwt.Keyfunc
	issuer   string
	audience string
}

func NewJWTVerifier(keyFunc jwt.Keyfunc, issuer string, audience string) *JWTVerifier {
	return &JWTVerifier{
		keyFunc:  keyFunc,
		issuer:   issuer,
		audience: audience,
	}
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify は署名・発行者・audを検証してemailクレームを返す。
func (v *JWTVerifier) Verify(ctx context.Context, rawIDToken string) (string, error) {
	var claims idTokenClaims

	token, err := jwt.ParseWithClaims(
		rawIDToken,
		&claims,
		v.keyFunc,
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid id token")
	}
	if claims.Email == "" {
		return "", errors.New("id token has no email claim")
	}

	return claims.Email, nil
}

package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
	jwt      *JWT
}

type PlayerClaims struct {
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

func NewPlayerClaims(playerID string, lifetime time.Duration) *PlayerClaims {
	now := time.Now()
	return &PlayerClaims{
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToUpper(s) {
	case "DEFAULT":
		return http.SameSiteDefaultMode
	case "STRICT":
		return http.SameSiteStrictMode
	case "NONE":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// NewCookies reads COOKIES_DOMAIN, COOKIES_SECURE and COOKIES_SAMESITE.
// Unset variables fall back to a host-only, insecure, lax cookie.
func NewCookies(j *JWT) (*Cookies, error) {
	if j == nil {
		return nil, fmt.Errorf("cookies need a JWT config")
	}

	cookies := &Cookies{SameSite: http.SameSiteLaxMode, jwt: j}

	if domain, ok := os.LookupEnv("COOKIES_DOMAIN"); ok {
		cookies.Domain = domain
	}
	if secure, ok := os.LookupEnv("COOKIES_SECURE"); ok {
		cookies.Secure = secure != "0" && secure != ""
	}
	if sameSite, ok := os.LookupEnv("COOKIES_SAMESITE"); ok {
		cookies.SameSite = parseSameSite(sameSite)
	}

	return cookies, nil
}

// NewCookiesWithJWT builds a cookie config without reading the environment.
func NewCookiesWithJWT(j *JWT) *Cookies {
	return &Cookies{SameSite: http.SameSiteLaxMode, jwt: j}
}

func (c *Cookies) TokenLifetime() time.Duration {
	return c.jwt.TokenLifetime()
}

// Refresh signs claims and stores the token split in two cookies: the
// readable header and payload, and the http-only signature.
func (c *Cookies) Refresh(w http.ResponseWriter, claims *PlayerClaims) error {
	token, err := c.jwt.Sign(claims)
	if err != nil {
		return fmt.Errorf("unable to sign player claims: %w", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("malformed JWT token generated")
	}
	header, payload, signature := parts[0], parts[1], parts[2]
	expires := time.Now().Add(c.jwt.tokenLifetime)
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    header + "." + payload,
		Expires:  expires,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    signature,
		Expires:  expires,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	return nil
}

func (c *Cookies) ParsePlayerClaims(r *http.Request) (*PlayerClaims, error) {
	authCookie, err := r.Cookie("auth")
	if err != nil {
		return nil, err
	}
	signCookie, err := r.Cookie("sign")
	if err != nil {
		return nil, err
	}
	token, err := c.jwt.ParseWithClaims(
		authCookie.Value+"."+signCookie.Value, &PlayerClaims{},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*PlayerClaims)
	if !ok || claims.PlayerID == "" {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}

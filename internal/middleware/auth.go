package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	UserCookie  = "session"
	AdminCookie = "admin_session"

	roleUser  = "user"
	roleAdmin = "admin"
)

// context keys set for downstream handlers
const (
	CtxUserID  = "user_id"
	CtxAdminID = "admin_id"
)

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions issues and validates the signed, expiring session cookies used for
// both end-user and admin authorization. The admin credential is an explicit
// token rather than an ambient session flag, so the authorization boundary is
// checkable in isolation.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure}
}

func (s *Sessions) IssueUserCookie(userID string) *http.Cookie {
	return s.cookie(UserCookie, s.sign(userID, roleUser))
}

func (s *Sessions) IssueAdminCookie(adminID string) *http.Cookie {
	return s.cookie(AdminCookie, s.sign(adminID, roleAdmin))
}

// ClearCookie expires a session cookie client-side. The token itself stays
// valid until its TTL runs out; the TTL is the revocation bound.
func (s *Sessions) ClearCookie(name string) *http.Cookie {
	c := s.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func (s *Sessions) sign(subject, role string) string {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// HS256 signing of a well-formed claim set cannot fail at runtime
		panic(fmt.Sprintf("sign session token: %v", err))
	}
	return signed
}

func (s *Sessions) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.ttl),
	}
}

func (s *Sessions) parse(c echo.Context, cookieName, wantRole string) (string, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", fmt.Errorf("missing session cookie")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	if claims.Role != wantRole {
		return "", fmt.Errorf("wrong session role")
	}
	return claims.Subject, nil
}

// RequireUser rejects requests without a valid user session and exposes the
// authenticated user id to handlers via c.Get("user_id").
func (s *Sessions) RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := s.parse(c, UserCookie, roleUser)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			c.Set(CtxUserID, userID)
			return next(c)
		}
	}
}

// RequireAdmin guards operator endpoints with the admin session token.
func (s *Sessions) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			adminID, err := s.parse(c, AdminCookie, roleAdmin)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			c.Set(CtxAdminID, adminID)
			return next(c)
		}
	}
}

// IsAdmin reports whether the request carries a valid admin session, without
// rejecting it. Used by the status endpoint.
func (s *Sessions) IsAdmin(c echo.Context) bool {
	_, err := s.parse(c, AdminCookie, roleAdmin)
	return err == nil
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const emailContextKey = "user_email"

// AuthMiddleware validates bearer tokens issued by the external auth
// service (shared HS256 secret, subject = user email) and stores the email
// on the request context.
func AuthMiddleware(accessSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(accessSecret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			email, err := token.Claims.GetSubject()
			if err != nil || email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token payload")
			}

			c.Set(emailContextKey, email)
			return next(c)
		}
	}
}

// UserEmail returns the authenticated email set by AuthMiddleware.
func UserEmail(c echo.Context) string {
	email, _ := c.Get(emailContextKey).(string)
	return email
}

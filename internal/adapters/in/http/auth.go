package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which the authentication middleware stashes the
// caller's identity for downstream handlers.
const (
	contextKeyRole  = "role"
	contextKeyEmail = "email"
)

// Claims is the JWT payload issued by the identity service. Role carries
// one of the kernel.Role values; Email identifies the customer account.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// ParseToken validates the signature and expiry of a bearer token and
// returns its claims.
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// RequireAuth returns middleware that rejects requests without a valid
// bearer token and stashes the caller's role and email in the context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header is required",
				})
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header must be a bearer token",
				})
			}

			claims, err := ParseToken(secret, tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			role, err := kernel.ParseRole(claims.Role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Token carries an unknown role",
				})
			}

			ctx.Set(contextKeyRole, role)
			ctx.Set(contextKeyEmail, claims.Email)
			return next(ctx)
		}
	}
}

// RequireStaff returns middleware that rejects callers whose role is not
// a back-office role. It must run after RequireAuth.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, ok := ctx.Get(contextKeyRole).(kernel.Role)
			if !ok || !role.IsStaff() {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Staff role required",
				})
			}
			return next(ctx)
		}
	}
}

func callerRole(ctx echo.Context) kernel.Role {
	role, _ := ctx.Get(contextKeyRole).(kernel.Role)
	return role
}

func callerEmail(ctx echo.Context) string {
	email, _ := ctx.Get(contextKeyEmail).(string)
	return email
}

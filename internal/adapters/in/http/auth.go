package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

const tokenTTL = 24 * time.Hour

// issueToken signs a JWT carrying the account id and role.
func (s *Server) issueToken(accountID kernel.UUID, role auth.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  accountID.String(),
		"role": role.String(),
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	return token.SignedString(s.jwtSecret)
}

// authenticate verifies the bearer token and stores the caller's principal in
// the request context. Business code never sees the token, only the principal.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		principal, err := principalFromClaims(token.Claims)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token claims",
			})
		}

		ctx.Set(principalContextKey, principal)
		return next(ctx)
	}
}

func principalFromClaims(claims jwt.Claims) (auth.Principal, error) {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return auth.Principal{}, fmt.Errorf("unexpected claims type %T", claims)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return auth.Principal{}, err
	}
	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return auth.Principal{}, err
	}

	roleName, _ := mapClaims["role"].(string)
	role, err := auth.NewRoleFromString(roleName)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.NewPrincipal(id, role)
}

func principalFrom(ctx echo.Context) (auth.Principal, bool) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	return principal, ok
}

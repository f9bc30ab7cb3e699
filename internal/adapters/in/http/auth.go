package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var ErrUnauthenticated = errors.New("missing or invalid bearer token")

// Claims are issued by the identity provider. Subject carries the user id.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Authenticator verifies HS256 bearer tokens and turns them into actors.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret []byte, issuer string) Authenticator {
	return Authenticator{secret: secret, issuer: issuer}
}

// Issue signs a token for userID; used by tooling and tests.
func (a Authenticator) Issue(userID kernel.UUID, role user.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates the token and returns the actor it identifies.
func (a Authenticator) Parse(token string) (user.Actor, error) {
	var claims Claims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: subject: %w", ErrUnauthenticated, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	actor, err := user.NewActor(userID, role)
	if err != nil {
		return user.Actor{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return actor, nil
}

// Middleware rejects requests without a valid token with 401 and stores the
// actor for the handlers.
func (a Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error()).SetInternal(ErrUnauthenticated)
			}

			actor, err := a.Parse(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error()).SetInternal(err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) user.Actor {
	actor, _ := c.Get(actorContextKey).(user.Actor)
	return actor
}

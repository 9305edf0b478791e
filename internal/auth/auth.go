package auth

import (
	"context"
	"net/http"
	"time"

	"bizops/backend/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Roles are a fixed, closed enumeration. RoleSuperAdmin passes every check.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleLeader     = "LEADER"
	RoleAdmin      = "ADMIN"
	RoleStaff      = "STAFF"
	RoleViewer     = "VIEWER"
)

var Roles = []string{RoleSuperAdmin, RoleLeader, RoleAdmin, RoleStaff, RoleViewer}

// ValidRole reports whether role belongs to the enumeration.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccess is the single authorization gate. An empty required list means any
// authenticated identity passes. Every role comparison in the service routes
// through here.
func CanAccess(role string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	if role == RoleSuperAdmin {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

type ctxKey int

// Key is used to store claims in the request context.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
}

func (c Claims) Authorized(required ...string) bool {
	return CanAccess(c.Role, required...)
}

// GetClaims reads the authenticated claims attached by the middleware.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// Auth signs and validates the service's session tokens.
type Auth struct {
	key []byte
}

func New(key string) *Auth {
	return &Auth{key: []byte(key)}
}

func (a *Auth) GenerateTokens(userID int, role string) (string, string, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTokenTTL).Unix(),
		},
		UserId: userID,
		Role:   role,
	})
	accessToken, err := access.SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTokenTTL).Unix(),
			Subject:   "refresh",
		},
		UserId: userID,
		Role:   role,
	})
	refreshToken, err := refresh.SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return accessToken, refreshToken, nil
}

func (a *Auth) ValidateToken(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateRefreshToken additionally checks the refresh marker so an access
// token cannot be replayed against the refresh endpoint.
func (a *Auth) ValidateRefreshToken(token string) (Claims, error) {
	claims, err := a.ValidateToken(token)
	if err != nil {
		return Claims{}, err
	}
	if claims.Subject != "refresh" {
		return Claims{}, errors.New("not a refresh token")
	}
	return claims, nil
}

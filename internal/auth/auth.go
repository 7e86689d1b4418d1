package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/veloralabs/agencydesk/internal/config"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// Claims holds the identity extracted from a validated token
type Claims struct {
	UserID string
	Role   types.UserRole
}

type Provider interface {
	GenerateToken(ctx context.Context, userID string, role types.UserRole) (string, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

type jwtAuth struct {
	AuthConfig config.AuthConfig
}

func NewProvider(cfg *config.Configuration) Provider {
	return &jwtAuth{
		AuthConfig: cfg.Auth,
	}
}

func (a *jwtAuth) GenerateToken(ctx context.Context, userID string, role types.UserRole) (string, error) {
	// tokens expire after 30 days
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     expiration.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.AuthConfig.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

func (a *jwtAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(a.AuthConfig.Secret), nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	role := types.RoleGuest
	if roleStr, roleOk := claims["role"].(string); roleOk {
		role = types.UserRole(roleStr)
	}

	return &Claims{UserID: userID, Role: role}, nil
}

package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

// Claims is the identity carried by an access token.
type Claims struct {
	UserID string
	Email  string
	Role   user.Role
}

type Service interface {
	GenerateAccessToken(claims Claims, ttl time.Duration) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService verifies HS256 tokens issued by the auth service sharing secretKey.
func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken mints a token with the same claim layout the auth service issues.
func (j *JWTService) GenerateAccessToken(claims Claims, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":     claims.Email,
		"user_id": claims.UserID,
		"email":   claims.Email,
		"role":    string(claims.Role),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// ClaimsFromMap extracts Claims from a decoded token claim set.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	tokenType, _ := m["type"].(string)
	if tokenType != TokenTypeAccess {
		return Claims{}, auth.ErrInvalidToken
	}

	userID, _ := m["user_id"].(string)
	if userID == "" {
		return Claims{}, fmt.Errorf("%w: %w", auth.ErrInvalidToken, user.ErrUserIDRequired)
	}

	roleStr, _ := m["role"].(string)
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Claims{}, fmt.Errorf("%w: unknown role %q", auth.ErrInvalidToken, roleStr)
	}

	email, _ := m["email"].(string)
	if email == "" {
		email, _ = m["sub"].(string)
	}

	return Claims{UserID: userID, Email: email, Role: role}, nil
}

// ClaimsFromContext reads the verified token placed in ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}
	if token == nil {
		return Claims{}, auth.ErrInvalidToken
	}
	return ClaimsFromMap(claims)
}

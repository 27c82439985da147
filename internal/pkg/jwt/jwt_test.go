package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecode(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, expiresAt, err := svc.GenerateAccessToken(Claims{UserID: "u-1", Email: "a@b.test", Role: user.RoleManager}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "u-1", Email: "a@b.test", Role: user.RoleManager}, claims)
}

func TestClaimsFromMap(t *testing.T) {
	_, err := ClaimsFromMap(map[string]interface{}{"type": "refresh", "user_id": "u-1", "role": "ADMIN"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = ClaimsFromMap(map[string]interface{}{"type": "access", "role": "ADMIN"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.ErrorIs(t, err, user.ErrUserIDRequired)

	_, err = ClaimsFromMap(map[string]interface{}{"type": "access", "user_id": "u-1", "role": "owner"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	claims, err := ClaimsFromMap(map[string]interface{}{"type": "access", "user_id": "u-1", "role": "employee", "sub": "e@x.test"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, claims.Role)
	assert.Equal(t, "e@x.test", claims.Email)
}

func TestClaimsFromContextWithoutToken(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

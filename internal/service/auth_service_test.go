package service

import (
	"context"
	"testing"

	"lavapos/internal/dto"
	"lavapos/internal/model"
	"lavapos/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) AuthService {
	t.Helper()
	users := memory.NewUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("742211010338"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &model.User{
		Username:     "DENNIS CASTILLO",
		PasswordHash: string(hash),
		Role:         "admin",
	}))
	return NewAuthService(users, testSecret, 8)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "DENNIS CASTILLO",
		Password: "742211010338",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "DENNIS CASTILLO", resp.Username)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "DENNIS CASTILLO", claims["username"])
	assert.NotEmpty(t, claims["user_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Username: "DENNIS CASTILLO", Password: "incorrecta"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "742211010338"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

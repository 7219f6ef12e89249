// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/password-vault/internal/config"
	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/internal/mock"
	"github.com/MKhiriev/password-vault/internal/store"
	"github.com/MKhiriev/password-vault/internal/utils"
	"github.com/MKhiriev/password-vault/models"
)

func testAppConfig() config.App {
	return config.App{
		PasswordHashKey: "hash-key",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "password-vault",
		TokenDuration:   time.Hour,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, testAppConfig(), logger.Nop()), users
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	wantHash := utils.HashString("s3cret", "hash-key")
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "john", user.Login)
			assert.Equal(t, wantHash, user.PasswordHash)
			assert.Empty(t, user.Password, "plain password must not reach the repository")
			user.UserID = 42
			return user, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "john", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "john"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "s3cret"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "john", Password: "s3cret"})

	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users := newTestAuthService(t)

	stored := models.User{
		UserID:       7,
		Login:        "john",
		PasswordHash: utils.HashString("s3cret", "hash-key"),
	}
	users.EXPECT().
		FindUserByLogin(gomock.Any(), "john").
		Return(stored, nil)

	found, err := svc.Login(context.Background(), models.User{Login: "john", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	stored := models.User{
		UserID:       7,
		Login:        "john",
		PasswordHash: utils.HashString("s3cret", "hash-key"),
	}
	users.EXPECT().
		FindUserByLogin(gomock.Any(), "john").
		Return(stored, nil)

	_, err := svc.Login(context.Background(), models.User{Login: "john", Password: "wrong"})

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		FindUserByLogin(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "s3cret"})

	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Login: "john"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42, Login: "john"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	issuing := NewAuthService(users, testAppConfig(), logger.Nop())
	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	otherCfg := testAppConfig()
	otherCfg.TokenSignKey = "different-key"
	verifying := NewAuthService(users, otherCfg, logger.Nop())

	_, err = verifying.ParseToken(context.Background(), token.SignedString)

	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	cfg := testAppConfig()
	cfg.TokenDuration = -time.Minute
	svc := NewAuthService(users, cfg, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)

	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}

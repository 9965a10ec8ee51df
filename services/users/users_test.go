package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dustbinbackend/clients"
	"dustbinbackend/clients/google"
	"dustbinbackend/core"
	"dustbinbackend/db"
	"dustbinbackend/models"
	"dustbinbackend/testutils"
)

const testJWTSecret = "test-secret"

func newTestService(repo *db.MockUsersRepository, verifier *google.MockGoogleTokenVerifier) *UsersService {
	return NewUsersService(repo, verifier, testJWTSecret)
}

func TestSignInWithGoogle_CreatesNewUser(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	user := testutils.NewTestUser(1)
	mockVerifier.On("VerifyIDToken", mock.Anything, "google-token").Return(&clients.GoogleTokenClaims{
		Subject: user.GoogleID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: "https://example.com/pic.png",
	}, nil)
	mockRepo.On("GetUserByGoogleID", mock.Anything, user.GoogleID).
		Return(mo.None[*models.User](), nil)
	mockRepo.On(
		"CreateUser",
		mock.Anything,
		user.GoogleID,
		user.Email,
		user.Name,
		testutils.Ptr("https://example.com/pic.png"),
	).Return(user, nil)

	result, err := service.SignInWithGoogle(context.Background(), "google-token")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user, result.User)
	mockRepo.AssertNotCalled(t, "UpdateUserProfile")
	mockRepo.AssertExpectations(t)
}

func TestSignInWithGoogle_UpdatesExistingUser(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	existing := testutils.NewTestUser(7)
	updated := testutils.NewTestUser(7)
	updated.Name = "Renamed User"

	mockVerifier.On("VerifyIDToken", mock.Anything, "google-token").Return(&clients.GoogleTokenClaims{
		Subject: existing.GoogleID,
		Email:   existing.Email,
		Name:    "Renamed User",
	}, nil)
	mockRepo.On("GetUserByGoogleID", mock.Anything, existing.GoogleID).
		Return(mo.Some(existing), nil)
	mockRepo.On("UpdateUserProfile", mock.Anything, 7, "Renamed User", (*string)(nil)).
		Return(updated, nil)

	result, err := service.SignInWithGoogle(context.Background(), "google-token")

	require.NoError(t, err)
	assert.Equal(t, updated, result.User)
	mockRepo.AssertNotCalled(t, "CreateUser")
	mockRepo.AssertExpectations(t)
}

func TestSignInWithGoogle_NameDefaultsToEmail(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	user := testutils.NewTestUser(2)
	user.Name = user.Email

	mockVerifier.On("VerifyIDToken", mock.Anything, "google-token").Return(&clients.GoogleTokenClaims{
		Subject: user.GoogleID,
		Email:   user.Email,
	}, nil)
	mockRepo.On("GetUserByGoogleID", mock.Anything, user.GoogleID).
		Return(mo.None[*models.User](), nil)
	mockRepo.On("CreateUser", mock.Anything, user.GoogleID, user.Email, user.Email, (*string)(nil)).
		Return(user, nil)

	_, err := service.SignInWithGoogle(context.Background(), "google-token")

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSignInWithGoogle_InvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		claims *clients.GoogleTokenClaims
	}{
		{
			name:   "missing subject",
			claims: &clients.GoogleTokenClaims{Email: "someone@example.com"},
		},
		{
			name:   "missing email",
			claims: &clients.GoogleTokenClaims{Subject: "google-sub-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(db.MockUsersRepository)
			mockVerifier := new(google.MockGoogleTokenVerifier)
			service := newTestService(mockRepo, mockVerifier)

			mockVerifier.On("VerifyIDToken", mock.Anything, "google-token").
				Return(tt.claims, nil)

			result, err := service.SignInWithGoogle(context.Background(), "google-token")

			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidTokenPayload)
			assert.Nil(t, result)
			mockRepo.AssertNotCalled(t, "GetUserByGoogleID")
		})
	}
}

func TestSignInWithGoogle_VerifierFailure(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	mockVerifier.On("VerifyIDToken", mock.Anything, "bad-token").
		Return(nil, errors.New("token expired"))

	result, err := service.SignInWithGoogle(context.Background(), "bad-token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrInvalidTokenPayload)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "GetUserByGoogleID")
}

func TestSessionToken_RoundTrip(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	user := testutils.NewTestUser(42)
	token, err := service.signSessionToken(user)
	require.NoError(t, err)

	claims, err := service.ValidateSessionToken(token)

	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestValidateSessionToken_Invalid(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	signToken := func(secret string, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	now := time.Now()
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage token",
			token: "not-a-jwt",
		},
		{
			name: "wrong secret",
			token: signToken("other-secret", jwt.MapClaims{
				"userId": 1,
				"email":  "a@example.com",
				"exp":    jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "expired token",
			token: signToken(testJWTSecret, jwt.MapClaims{
				"userId": 1,
				"email":  "a@example.com",
				"exp":    jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
		},
		{
			name: "missing userId claim",
			token: signToken(testJWTSecret, jwt.MapClaims{
				"email": "a@example.com",
				"exp":   jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
		{
			name: "missing email claim",
			token: signToken(testJWTSecret, jwt.MapClaims{
				"userId": 1,
				"exp":    jwt.NewNumericDate(now.Add(time.Hour)),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateSessionToken(tt.token)

			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestGetUserByID(t *testing.T) {
	mockRepo := new(db.MockUsersRepository)
	mockVerifier := new(google.MockGoogleTokenVerifier)
	service := newTestService(mockRepo, mockVerifier)

	user := testutils.NewTestUser(3)
	mockRepo.On("GetUserByID", mock.Anything, 3).Return(mo.Some(user), nil)
	mockRepo.On("GetUserByID", mock.Anything, 999).Return(mo.None[*models.User](), nil)

	maybeUser, err := service.GetUserByID(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, maybeUser.IsPresent())
	assert.Equal(t, user, maybeUser.MustGet())

	maybeUser, err = service.GetUserByID(context.Background(), 999)
	require.NoError(t, err)
	assert.True(t, maybeUser.IsAbsent())
}

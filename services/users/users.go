package users

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/mo"

	"dustbinbackend/clients"
	"dustbinbackend/core"
	"dustbinbackend/db"
	"dustbinbackend/models"
)

// sessionTokenTTL is how long an issued session token stays valid.
const sessionTokenTTL = 7 * 24 * time.Hour

type UsersService struct {
	usersRepo db.UsersRepository
	verifier  clients.GoogleTokenVerifier
	jwtSecret []byte
}

func NewUsersService(
	repo db.UsersRepository,
	verifier clients.GoogleTokenVerifier,
	jwtSecret string,
) *UsersService {
	return &UsersService{
		usersRepo: repo,
		verifier:  verifier,
		jwtSecret: []byte(jwtSecret),
	}
}

// SignInWithGoogle verifies a Google ID token, upserts the matching user
// keyed on the Google subject, and issues a signed session token. The
// lookup and the insert/update are two sequential statements, not wrapped
// in a transaction.
func (s *UsersService) SignInWithGoogle(
	ctx context.Context,
	idToken string,
) (*models.SignInResult, error) {
	log.Printf("🔐 Starting Google sign-in")

	if idToken == "" {
		return nil, fmt.Errorf("id token cannot be empty")
	}

	claims, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, core.ErrInvalidTokenPayload
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	var picture *string
	if claims.Picture != "" {
		picture = &claims.Picture
	}

	maybeUser, err := s.usersRepo.GetUserByGoogleID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	var user *models.User
	if existing, ok := maybeUser.Get(); ok {
		// Refresh the profile in case name or picture changed on Google's side
		user, err = s.usersRepo.UpdateUserProfile(ctx, existing.ID, name, picture)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	} else {
		user, err = s.usersRepo.CreateUser(ctx, claims.Subject, claims.Email, name, picture)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	token, err := s.signSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Printf("✅ Google sign-in completed for user ID: %d", user.ID)
	return &models.SignInResult{Token: token, User: user}, nil
}

// ValidateSessionToken verifies a session token's signature and expiry and
// returns the identity it encodes. Any failure maps to core.ErrInvalidToken.
func (s *UsersService) ValidateSessionToken(tokenStr string) (*models.SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, core.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, core.ErrInvalidToken
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return nil, core.ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, core.ErrInvalidToken
	}

	return &models.SessionClaims{UserID: int(userID), Email: email}, nil
}

func (s *UsersService) GetUserByID(ctx context.Context, id int) (mo.Option[*models.User], error) {
	maybeUser, err := s.usersRepo.GetUserByID(ctx, id)
	if err != nil {
		return mo.None[*models.User](), fmt.Errorf("failed to get user by ID: %w", err)
	}
	return maybeUser, nil
}

func (s *UsersService) signSessionToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"iat":    jwt.NewNumericDate(now),
		"exp":    jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	})

	return token.SignedString(s.jwtSecret)
}

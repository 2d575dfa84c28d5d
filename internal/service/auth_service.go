package service

import (
	"context"
	"time"

	"inkwell/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-clients"
)

// AuthService mints and verifies access tokens. Verification always
// resolves the subject back to a live account; a token for a deleted or
// deactivated user is as invalid as a forged one.
type AuthService struct {
	users  *UserService
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users *UserService, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a signed HS256 token for the user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
		"jti":   uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// ParseToken verifies the signature and registered claims and returns the
// subject user ID.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.NewUnauthorizedError("Invalid signing method")
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.NewUnauthorizedError("Invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", models.NewUnauthorizedError("Invalid token subject")
	}
	return sub, nil
}

// Authenticate verifies a bearer token and resolves the acting user.
// Every failure on this path reads as Unauthorized so the response never
// leaks whether the subject exists.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	sub, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.users.ResolveIdentity(ctx, sub)
	if err != nil {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}
	return user, nil
}

// Register creates an account and immediately issues a token for it, so
// a new user is signed in without a second round trip.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, *models.User, error) {
	user, err := s.users.Register(ctx, in)
	if err != nil {
		return "", nil, err
	}
	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a token for the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
